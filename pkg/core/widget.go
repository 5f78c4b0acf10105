package core

import "reflect"

// Widget is an immutable description of part of the UI.
type Widget interface {
	// Key identifies the widget among its siblings. Most widgets return nil.
	Key() any
}

// BuildContext gives a widget access to its position in the tree.
type BuildContext interface {
	// DependOnInherited returns the nearest enclosing InheritedWidget whose
	// type is inheritedType, or nil if there is none. The aspect narrows the
	// dependency; nil depends on every change.
	DependOnInherited(inheritedType reflect.Type, aspect any) any
}

// StatelessWidget describes part of the UI by building other widgets.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget describes part of the UI through a State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable part of a StatefulWidget and builds its subtree.
type State interface {
	Build(ctx BuildContext) Widget
}

// InheritedWidget exposes itself to descendants via DependOnInherited.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}
