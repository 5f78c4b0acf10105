package widgets

import "github.com/go-drift/inspect/pkg/core"

// Opacity makes the modified widget partially transparent.
type Opacity struct {
	// Value is the opacity from 0.0 (invisible) to 1.0 (opaque).
	Value float64
}

// Background paints a color behind the modified widget.
type Background struct {
	Color Color
}

// Foreground sets the default content color of the modified widget.
type Foreground struct {
	Color Color
}

// Frame proposes a fixed size for the modified widget. Zero leaves a
// dimension unchanged.
type Frame struct {
	Width  float64
	Height float64
}

// KeyModifier attaches an identity to the modified widget.
type KeyModifier struct {
	Value any
}

// OnTap attaches a tap action to the modified widget.
type OnTap struct {
	Action func()
}

// WithOpacity applies an Opacity modifier.
func WithOpacity[W core.Widget](w W, value float64) core.Modified[W, Opacity] {
	return core.ModifiedOf(w, Opacity{Value: value})
}

// WithBackground applies a Background modifier.
func WithBackground[W core.Widget](w W, color Color) core.Modified[W, Background] {
	return core.ModifiedOf(w, Background{Color: color})
}

// WithForeground applies a Foreground modifier.
func WithForeground[W core.Widget](w W, color Color) core.Modified[W, Foreground] {
	return core.ModifiedOf(w, Foreground{Color: color})
}

// WithFrame applies a Frame modifier.
func WithFrame[W core.Widget](w W, width, height float64) core.Modified[W, Frame] {
	return core.ModifiedOf(w, Frame{Width: width, Height: height})
}

// Keyed applies a KeyModifier.
func Keyed[W core.Widget](w W, key any) core.Modified[W, KeyModifier] {
	return core.ModifiedOf(w, KeyModifier{Value: key})
}

// OnTapped applies an OnTap modifier.
func OnTapped[W core.Widget](w W, action func()) core.Modified[W, OnTap] {
	return core.ModifiedOf(w, OnTap{Action: action})
}
