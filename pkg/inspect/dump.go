package inspect

import (
	"github.com/go-drift/inspect/pkg/accessor"
)

// Tree returns the attribute tree of the node. Custom widgets get an extra
// "body" child holding what their Build returns, and the view's modifiers
// are listed after the node's own fields.
func (v *View) Tree() *accessor.Node {
	opts := accessor.TreeOptions{
		Accessor: v.in.acc,
		MaxDepth: v.in.treeDepth,
		Expand:   v.expandBody,
	}
	root := accessor.Tree(v.env.Node, opts)
	for _, m := range v.env.Modifiers {
		mod := accessor.Tree(m.Payload, opts)
		mod.Label = "modifier"
		root.Children = append(root.Children, mod)
	}
	return root
}

// Dump renders Tree as indented text.
func (v *View) Dump() string {
	return v.Tree().String()
}

func (v *View) expandBody(value any) []accessor.Field {
	if !IsCustom(value) {
		return nil
	}
	body, err := v.in.cls.build(Envelope{Node: value, Ambient: v.env.Ambient})
	if err != nil {
		return []accessor.Field{{Label: "body", Value: "<" + err.Error() + ">"}}
	}
	return []accessor.Field{{Label: "body", Value: body}}
}
