package testing

import (
	"fmt"

	"github.com/go-drift/inspect/pkg/inspect"
)

// Tap invokes the tap action of the first view matched by finder. Call
// Pump afterwards to see the effect.
func (t *WidgetTester) Tap(finder Finder) error {
	v, err := t.first("Tap", finder)
	if err != nil {
		return err
	}
	return v.Tap()
}

// LongPress invokes the OnLongPress callback of the first GestureDetector
// matched by finder.
func (t *WidgetTester) LongPress(finder Finder) error {
	v, err := t.first("LongPress", finder)
	if err != nil {
		return err
	}
	return v.LongPress()
}

func (t *WidgetTester) first(op string, finder Finder) (*inspect.View, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no views: %s: %w", op, finder.Description(), result.Err())
	}
	return result.First(), nil
}
