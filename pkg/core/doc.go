// Package core provides the widget vocabulary that inspection operates on.
//
// Widgets are immutable configuration values. Most are plain structs from
// the widgets package, but the framework also constructs generic and
// type-erased nodes whose concrete types are not meant to be named by
// application code: [AnyWidget], [Modified], [Optional], [Conditional] and
// the tuple types. Their fields are unexported; the inspect package reaches
// them through reflection.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. StatelessWidget
// builds a subtree from a BuildContext; StatefulWidget builds it from a
// State. InheritedWidget makes a value available to every descendant that
// calls [BuildContext.DependOnInherited].
//
// # Ambient Dependencies
//
// A widget can declare a dependency on a shared instance supplied from
// outside the tree by holding an [Ambient] field:
//
//	type Profile struct {
//	    core.StatelessBase
//	    Session core.Ambient[*Session]
//	}
//
//	func (p Profile) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: p.Session.Get().User}
//	}
//
// Reading an Ambient that was never filled panics, so a Profile built
// outside a running app can only be inspected once the dependency is
// registered with the inspector.
//
// # Constructor Conventions
//
// Widgets use struct literals or XxxOf() helpers:
//
//	core.ModifiedOf(widgets.Text{Content: "hi"}, widgets.Opacity{Value: 0.5})
//	core.OptionalIf(loggedIn, widgets.Text{Content: "Welcome"})
package core
