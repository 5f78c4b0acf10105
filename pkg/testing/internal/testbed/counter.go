// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/widgets"
)

// Counter displays a count and increments it on tap. The count lives
// outside the widget so that it survives a re-pump.
type Counter struct {
	core.StatelessBase
	Count *int
	OnTap func(count int)
}

func (c Counter) Build(core.BuildContext) core.Widget {
	return widgets.GestureDetector{
		OnTap: func() {
			*c.Count++
			if c.OnTap != nil {
				c.OnTap(*c.Count)
			}
		},
		Child: widgets.Text{Content: fmt.Sprintf("%d", *c.Count)},
	}
}

// Labeled is a keyed row of a title and a value.
type Labeled struct {
	core.StatelessBase
	Title string
	Value string
	ID    string
}

func (l Labeled) Build(core.BuildContext) core.Widget {
	return widgets.Keyed(widgets.RowOf(widgets.MainAxisAlignmentStart, widgets.CrossAxisAlignmentCenter,
		widgets.Text{Content: l.Title},
		widgets.WithOpacity(widgets.Text{Content: l.Value}, 0.6),
	), l.ID)
}
