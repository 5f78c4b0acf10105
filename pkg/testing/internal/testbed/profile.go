package testbed

import (
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/widgets"
)

// Session is the signed-in user, provided by the app at runtime.
type Session struct {
	User string
}

// Profile greets the user of the ambient Session.
type Profile struct {
	core.StatelessBase
	Session core.Ambient[*Session]
}

func (p Profile) Build(core.BuildContext) core.Widget {
	return widgets.ColumnOf(widgets.MainAxisAlignmentStart, widgets.CrossAxisAlignmentStart,
		widgets.Text{Content: "Signed in as"},
		widgets.Text{Content: p.Session.Get().User},
	)
}

// Theme makes a name visible to the widgets below it.
type Theme struct {
	core.InheritedBase
	Name  string
	Child core.Widget
}

func (t Theme) ChildWidget() core.Widget { return t.Child }

func (t Theme) UpdateShouldNotify(old core.InheritedWidget) bool {
	return t.Name != old.(Theme).Name
}

// Badge shows the enclosing Theme's name.
type Badge struct {
	core.StatelessBase
}

func (Badge) Build(ctx core.BuildContext) core.Widget {
	theme, ok := core.DependOn[Theme](ctx)
	if !ok {
		return widgets.Text{Content: "default"}
	}
	return widgets.WithBackground(widgets.Text{Content: theme.Name}, widgets.ColorBlue)
}
