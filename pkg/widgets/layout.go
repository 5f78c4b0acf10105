package widgets

import "github.com/go-drift/inspect/pkg/core"

// Padding insets its child by the given padding.
type Padding struct {
	Padding     EdgeInsets
	ChildWidget core.Widget
}

// Key returns nil (no key).
func (Padding) Key() any { return nil }

// Center positions its child at the center of the available space.
type Center struct {
	Child core.Widget
}

// Key returns nil (no key).
func (Center) Key() any { return nil }

// Align positions its child within itself according to Alignment.
type Align struct {
	Child     core.Widget
	Alignment Alignment
}

// Key returns nil (no key).
func (Align) Key() any { return nil }

// SizedBox forces a specific size on its child. Width or Height of zero
// leaves that dimension unconstrained. Without a child it is a spacer.
type SizedBox struct {
	Width  float64
	Height float64
	Child  core.Widget
}

// Key returns nil (no key).
func (SizedBox) Key() any { return nil }

// MainAxisAlignment controls how children are positioned along the main axis.
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end.
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space between children.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space around children.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly.
	MainAxisAlignmentSpaceEvenly
)

func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return "unknown"
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis.
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentEnd
	CrossAxisAlignmentCenter
	CrossAxisAlignmentStretch
)

func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Row lays out children horizontally.
//
//	Row{
//	    ChildrenWidgets: []core.Widget{
//	        Icon{Glyph: "★"},
//	        Text{Content: "Favorites"},
//	    },
//	}
type Row struct {
	ChildrenWidgets    []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

// RowOf creates a horizontal layout with the specified alignments.
func RowOf(alignment MainAxisAlignment, crossAlignment CrossAxisAlignment, children ...core.Widget) Row {
	return Row{
		ChildrenWidgets:    children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
	}
}

// Key returns nil (no key).
func (Row) Key() any { return nil }

// Column lays out children vertically.
type Column struct {
	ChildrenWidgets    []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

// ColumnOf creates a vertical layout with the specified alignments.
func ColumnOf(alignment MainAxisAlignment, crossAlignment CrossAxisAlignment, children ...core.Widget) Column {
	return Column{
		ChildrenWidgets:    children,
		MainAxisAlignment:  alignment,
		CrossAxisAlignment: crossAlignment,
	}
}

// Key returns nil (no key).
func (Column) Key() any { return nil }

// Stack overlays children on top of each other. The first child is at the
// bottom, the last on top.
type Stack struct {
	Children  []core.Widget
	Alignment Alignment
}

// StackOf creates a stack with the given children.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

// Key returns nil (no key).
func (Stack) Key() any { return nil }

// Group collects sibling widgets without laying them out. Content is usually
// a core tuple or a single widget.
//
//	Group{Content: core.Tuple2Of(Text{Content: "a"}, Text{Content: "b"})}
type Group struct {
	Content core.Widget
}

// Key returns nil (no key).
func (Group) Key() any { return nil }

// Centered wraps a child in a Center widget.
func Centered(child core.Widget) Center {
	return Center{Child: child}
}

// Padded wraps a child with the specified padding.
func Padded(padding EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, ChildWidget: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}
