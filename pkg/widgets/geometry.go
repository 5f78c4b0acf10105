package widgets

import "fmt"

// EdgeInsets represents padding on the four sides of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll creates uniform padding on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates symmetric horizontal and vertical padding.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the total horizontal padding.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical padding.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Alignment represents a position within a box using a coordinate system
// where the center is (0, 0), top-left is (-1, -1) and bottom-right is (1, 1).
type Alignment struct {
	X float64
	Y float64
}

// Common alignment constants.
var (
	AlignmentTopLeft      = Alignment{-1, -1}
	AlignmentTopCenter    = Alignment{0, -1}
	AlignmentTopRight     = Alignment{1, -1}
	AlignmentCenterLeft   = Alignment{-1, 0}
	AlignmentCenter       = Alignment{0, 0}
	AlignmentCenterRight  = Alignment{1, 0}
	AlignmentBottomLeft   = Alignment{-1, 1}
	AlignmentBottomCenter = Alignment{0, 1}
	AlignmentBottomRight  = Alignment{1, 1}
)

// Color is an ARGB color.
type Color uint32

// RGB constructs an opaque Color from red, green and blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return Color(uint32(a*255+0.5)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel (0-255).
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
)
