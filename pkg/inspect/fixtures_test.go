package inspect

import (
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/widgets"
)

// container is an unregistered multi-child widget.
type container struct {
	Children []core.Widget
}

func (container) Key() any { return nil }

// card is an unregistered single-child widget.
type card struct {
	Title string
	Body  core.Widget
}

func (card) Key() any { return nil }

type session struct{ user string }

// profile needs a session from the running app.
type profile struct {
	core.StatelessBase
	Session core.Ambient[*session]
}

func (p profile) Build(core.BuildContext) core.Widget {
	return widgets.Text{Content: p.Session.Get().user}
}

type theme struct {
	core.InheritedBase
	Name  string
	Child core.Widget
}

func (t theme) ChildWidget() core.Widget { return t.Child }

func (t theme) UpdateShouldNotify(old core.InheritedWidget) bool {
	return t.Name != old.(theme).Name
}

// themed reads the enclosing theme.
type themed struct {
	core.StatelessBase
}

func (themed) Build(ctx core.BuildContext) core.Widget {
	t, ok := core.DependOn[theme](ctx)
	if !ok {
		return widgets.Text{Content: "unthemed"}
	}
	return widgets.Text{Content: t.Name}
}

// strictThemed cannot build without an enclosing theme.
type strictThemed struct {
	core.StatelessBase
}

func (strictThemed) Build(ctx core.BuildContext) core.Widget {
	t, ok := core.DependOn[theme](ctx)
	if !ok {
		panic("no theme")
	}
	return widgets.Text{Content: t.Name}
}

// exploding panics while building.
type exploding struct {
	core.StatelessBase
}

func (exploding) Build(core.BuildContext) core.Widget {
	panic("boom")
}

// mirror builds an identical copy of itself.
type mirror struct {
	core.StatelessBase
	Label string
}

func (m mirror) Build(core.BuildContext) core.Widget {
	return mirror{Label: m.Label}
}

// staircase builds a deeper copy of itself forever.
type staircase struct {
	core.StatelessBase
	Step int
}

func (s staircase) Build(core.BuildContext) core.Widget {
	return staircase{Step: s.Step + 1}
}

func text(s string) widgets.Text {
	return widgets.Text{Content: s}
}

func column(children ...core.Widget) widgets.Column {
	return widgets.Column{ChildrenWidgets: children}
}

// header and footer take no space; pointers to them may share an address.
type header struct {
	core.StatelessBase
}

func (*header) Build(core.BuildContext) core.Widget {
	return widgets.Text{Content: "head"}
}

type footer struct {
	core.StatelessBase
}

func (*footer) Build(core.BuildContext) core.Widget {
	return widgets.Text{Content: "foot"}
}

// node is an unregistered single-child widget that can point at itself.
type node struct {
	Label string
	Child core.Widget
}

func (*node) Key() any { return nil }
