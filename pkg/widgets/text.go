package widgets

// FontWeight selects the thickness of glyphs.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightMedium FontWeight = 500
	FontWeightBold   FontWeight = 700
)

// TextStyle describes how text is drawn.
type TextStyle struct {
	FontSize   float64
	FontWeight FontWeight
	Color      Color
}

// Text displays a string with a single style.
//
// The Wrap and MaxLines fields control how text flows and truncates:
//
//   - Wrap=false (default): a single line, used for labels and buttons.
//   - Wrap=true: wraps at the available width.
//   - MaxLines: limits the number of visible lines (0 = unlimited).
//
// Common patterns:
//
//	// Single line
//	Text{Content: "Label"}
//
//	// Preview text limited to 2 lines
//	Text{Content: description, Wrap: true, MaxLines: 2}
type Text struct {
	// Content is the text string to display.
	Content string
	// Style controls the font size, weight and color.
	Style TextStyle
	// MaxLines limits the number of visible lines (0 = unlimited).
	MaxLines int
	// Wrap enables wrapping at the available width.
	Wrap bool
}

// Key returns nil (no key).
func (Text) Key() any { return nil }

// WithStyle returns a copy of the text with the given style.
func (t Text) WithStyle(style TextStyle) Text {
	t.Style = style
	return t
}

// WithMaxLines returns a copy of the text limited to n lines.
func (t Text) WithMaxLines(n int) Text {
	t.MaxLines = n
	return t
}

// Icon renders a single glyph.
type Icon struct {
	// Glyph is the text glyph to render.
	Glyph string
	// Size is the font size for the glyph.
	Size float64
	// Color is the glyph color.
	Color Color
}

// Key returns nil (no key).
func (Icon) Key() any { return nil }

// Spacer takes up free space inside a Row or Column.
type Spacer struct {
	// Flex is the share of free space this spacer takes (0 treated as 1).
	Flex int
}

// Key returns nil (no key).
func (Spacer) Key() any { return nil }

// Divider renders a thin horizontal line with optional insets.
type Divider struct {
	// Height is the total vertical space the divider occupies.
	Height float64
	// Thickness is the line thickness.
	Thickness float64
	// Color is the line color.
	Color Color
	// Indent is the left inset.
	Indent float64
	// EndIndent is the right inset.
	EndIndent float64
}

// Key returns nil (no key).
func (Divider) Key() any { return nil }
