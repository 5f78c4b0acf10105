// Package widgets provides the concrete widgets that application trees are
// built from.
//
// Widgets here are configuration only: they carry the fields a UI needs to
// describe itself and nothing else. Trees built from them are what the
// inspect package walks in tests.
//
// # Widget Construction
//
// Widgets use a two-tier construction pattern.
//
// ## Tier 1: Struct Literal (canonical, full control)
//
//	btn := Button{
//	    Label:    "Submit",
//	    OnTap:    handleSubmit,
//	    Disabled: !isValid,
//	}
//
// This is the PRIMARY way to create widgets. All fields are accessible.
//
// ## Tier 2: Helpers
//
// Layout helpers exist for Row, Column and Stack:
//
//	col := ColumnOf(
//	    MainAxisAlignmentCenter,
//	    CrossAxisAlignmentCenter,
//	    child1, child2,
//	)
//
// Also: RowOf, StackOf, VSpace, HSpace, Centered, Padded, Tap.
//
// # Modifiers
//
// Modifiers are plain values applied to a widget with [core.ModifiedOf].
// The helpers in this package apply the common ones:
//
//	WithOpacity(Text{Content: "faded"}, 0.4)
//	Keyed(Button{Label: "Save"}, "save")
//
// Applying several modifiers nests them; the first one applied is the
// innermost.
//
// # API Rules
//
//   - Canonical = struct literal. Always works, always documented.
//   - Helpers (ColumnOf, RowOf, StackOf) exist for ergonomics.
//   - WithX helpers return new values; they never mutate their argument.
package widgets
