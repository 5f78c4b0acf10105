package widgets

import "github.com/go-drift/inspect/pkg/core"

// GestureDetector wraps a child widget with gesture callbacks.
//
//	GestureDetector{
//	    OnTap: func() { handleTap() },
//	    Child: Icon{Glyph: "+"},
//	}
type GestureDetector struct {
	Child core.Widget
	// OnTap is called when the child is tapped.
	OnTap func()
	// OnLongPress is called when the child is pressed and held.
	OnLongPress func()
}

// Key returns nil (no key).
func (GestureDetector) Key() any { return nil }

// Button is a tappable text label.
//
//	Button{Label: "Submit", OnTap: handleSubmit, Disabled: !isValid}
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is tapped. Ignored when Disabled.
	OnTap func()
	// Disabled prevents interaction.
	Disabled bool
}

// Key returns nil (no key).
func (Button) Key() any { return nil }

// Tap wraps a child with a tap handler.
func Tap(onTap func(), child core.Widget) GestureDetector {
	return GestureDetector{OnTap: onTap, Child: child}
}
