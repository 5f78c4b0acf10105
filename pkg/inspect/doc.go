// Package inspect walks widget trees and answers questions about them.
//
// A tree is any value built from widgets: plain structs from the widgets
// package, custom widgets with a Build method, and the generic nodes the
// framework wraps them in (core.Modified, core.Optional, core.AnyWidget and
// friends). None of these types need to be known to the caller.
//
// # Views and Paths
//
// [Inspect] returns a [View] of the root. Views navigate one step at a time
// and remember how they got there:
//
//	root, err := inspect.Inspect(tree)
//	label, err := root.ChildAt(1)
//	fmt.Println(label.PathToRoot()) // column().child(1)
//
// Every failure is an *errors.InspectionError carrying that path.
//
// # Categories
//
// Each node is classified into a [Category] that decides how it unwraps.
// Wrapper, modified and optional nodes are transparent: views step through
// them without adding to the path, collecting modifiers on the way. Single,
// multi and tuple nodes have children; a child never inherits its parent's
// modifiers. Leaf nodes have none.
//
// Classification uses a [Kinds] registry keyed by type name prefix.
// Unregistered types are classified by shape, so most custom widgets need
// no registration:
//
//	kinds := inspect.DefaultKinds()
//	kinds.Register(inspect.Kind{
//	    TypePrefix:  "Card",
//	    Category:    inspect.CategorySingle,
//	    ChildLabels: []string{"Body"},
//	})
//	root, err := inspect.Inspect(tree, inspect.WithKinds(kinds))
//
// # Searching
//
// [Find] searches breadth-first by default:
//
//	match, err := inspect.Find(root, inspect.HasText("Save"))
//
// A node that cannot be expanded, such as a custom widget whose ambient
// dependencies are not registered, does not end the search. If nothing
// matches, the *errors.NotFoundError lists those nodes as blockers.
//
// # Ambient Dependencies
//
// Custom widgets are built to reach their bodies. Their core.Ambient fields
// are filled from the registry passed with [WithRegistry], and inherited
// widgets above them are visible to BuildContext.DependOnInherited. The
// original tree is never modified.
package inspect
