package inspect

import (
	"time"

	"github.com/go-drift/inspect/pkg/errors"
	"github.com/go-drift/inspect/pkg/widgets"
)

// Text returns the content of a Text node.
func (v *View) Text() (string, error) {
	t, err := ValueAs[widgets.Text](v)
	if err != nil {
		return "", err
	}
	return t.Content, nil
}

// ButtonLabel returns the label of a Button node.
func (v *View) ButtonLabel() (string, error) {
	b, err := ValueAs[widgets.Button](v)
	if err != nil {
		return "", err
	}
	return b.Label, nil
}

// Opacity returns the value of the last applied Opacity modifier.
func (v *View) Opacity() (float64, error) {
	value, err := v.ModifierAttribute("Opacity", "Value")
	if err != nil {
		return 0, err
	}
	f, ok := value.(float64)
	if !ok {
		return 0, v.fail("Opacity", &errors.TypeMismatchError{Expected: "float64", Actual: v.in.acc.FullTypeName(value)})
	}
	return f, nil
}

// Tap invokes the node's tap action: the last applied OnTap modifier, or
// the OnTap callback of a GestureDetector or Button. A panicking callback
// is reported and returned as a PanicError.
func (v *View) Tap() error {
	action, err := v.tapAction()
	if err != nil {
		return v.fail("Tap", err)
	}
	return v.invoke("Tap", action)
}

// LongPress invokes the OnLongPress callback of a GestureDetector. Panics
// are handled as in Tap.
func (v *View) LongPress() error {
	var action func()
	switch w := v.env.Node.(type) {
	case widgets.GestureDetector:
		action = w.OnLongPress
	case *widgets.GestureDetector:
		action = w.OnLongPress
	default:
		return v.fail("LongPress", &errors.TypeMismatchError{Expected: "GestureDetector", Actual: v.in.acc.FullTypeName(v.env.Node)})
	}
	if action == nil {
		return v.fail("LongPress", &errors.NotSupportedError{Message: v.TypeName() + " has no long press action"})
	}
	return v.invoke("LongPress", action)
}

func (v *View) invoke(op string, action func()) error {
	var panicked *errors.PanicError
	func() {
		defer errors.RecoverWithCallback("inspect."+op, func(r any) {
			panicked = &errors.PanicError{Op: "inspect." + op, Value: r, Timestamp: time.Now()}
		})
		action()
	}()
	if panicked != nil {
		return v.fail(op, panicked)
	}
	return nil
}

func (v *View) tapAction() (func(), error) {
	for i := len(v.env.Modifiers) - 1; i >= 0; i-- {
		if m, ok := v.env.Modifiers[i].Payload.(widgets.OnTap); ok && m.Action != nil {
			return m.Action, nil
		}
	}
	switch w := v.env.Node.(type) {
	case widgets.GestureDetector:
		if w.OnTap != nil {
			return w.OnTap, nil
		}
	case *widgets.GestureDetector:
		if w.OnTap != nil {
			return w.OnTap, nil
		}
	case widgets.Button:
		if w.Disabled {
			return nil, &errors.NotSupportedError{Message: "button '" + w.Label + "' is disabled"}
		}
		if w.OnTap != nil {
			return w.OnTap, nil
		}
	case *widgets.Button:
		if w.Disabled {
			return nil, &errors.NotSupportedError{Message: "button '" + w.Label + "' is disabled"}
		}
		if w.OnTap != nil {
			return w.OnTap, nil
		}
	}
	return nil, &errors.NotSupportedError{Message: v.TypeName() + " has no tap action"}
}
