package core

import "reflect"

// StatelessBase gives a custom view an unkeyed Key. The inspector treats
// any StatelessWidget as a single-child node whose child is what Build
// returns:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

func (StatelessBase) Key() any { return nil }

// StatefulBase is StatelessBase for widgets that create a State.
type StatefulBase struct{}

func (StatefulBase) Key() any { return nil }

// InheritedBase is embedded by widgets that publish themselves to their
// subtree. Descendants read them back with [DependOn]:
//
//	type UserScope struct {
//	    core.InheritedBase
//	    User  *User
//	    Child core.Widget
//	}
//
//	func (u UserScope) ChildWidget() core.Widget { return u.Child }
//
//	func (u UserScope) UpdateShouldNotify(old core.InheritedWidget) bool {
//	    return u.User != old.(UserScope).User
//	}
type InheritedBase struct{}

func (InheritedBase) Key() any { return nil }

// StateBase remembers the widget a State was created from.
type StateBase struct {
	widget StatefulWidget
}

// Widget returns the widget that created this state, or nil before
// AttachWidget.
func (s *StateBase) Widget() StatefulWidget { return s.widget }

// AttachWidget binds the state to w. The inspector calls it right after
// CreateState.
func (s *StateBase) AttachWidget(w StatefulWidget) { s.widget = w }

// Initializer is implemented by states that prepare themselves before the
// first Build.
type Initializer interface {
	InitState()
}

// Stateful returns a stateful widget made of two closures: init produces
// the starting state and build renders it.
//
//	counter := core.Stateful(
//	    func() int { return 3 },
//	    func(n int, _ core.BuildContext) core.Widget {
//	        return widgets.Text{Content: strconv.Itoa(n)}
//	    },
//	)
func Stateful[S any](init func() S, build func(state S, ctx BuildContext) Widget) Widget {
	return &closureWidget[S]{init: init, build: build}
}

type closureWidget[S any] struct {
	init  func() S
	build func(S, BuildContext) Widget
}

func (w *closureWidget[S]) Key() any { return nil }

func (w *closureWidget[S]) CreateState() State {
	return &closureState[S]{owner: w}
}

type closureState[S any] struct {
	owner *closureWidget[S]
	value S
}

func (s *closureState[S]) InitState() {
	if s.owner.init != nil {
		s.value = s.owner.init()
	}
}

func (s *closureState[S]) Build(ctx BuildContext) Widget {
	return s.owner.build(s.value, ctx)
}

// DependOn returns the nearest enclosing inherited widget of type T. The
// second result is false when ctx is nil or no such widget encloses the
// caller.
//
//	scope, ok := core.DependOn[UserScope](ctx)
func DependOn[T InheritedWidget](ctx BuildContext) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	w, ok := ctx.DependOnInherited(reflect.TypeFor[T](), nil).(T)
	if !ok {
		return zero, false
	}
	return w, true
}
