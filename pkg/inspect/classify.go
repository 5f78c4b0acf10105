package inspect

import (
	"reflect"
	"strings"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/ambient"
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/errors"
)

// Branch names of optional nodes.
const (
	BranchSome  = "some"
	BranchTrue  = "trueContent"
	BranchFalse = "falseContent"
)

// Classifier decides how nodes unwrap and produces their children.
type Classifier struct {
	acc      accessor.Accessor
	kinds    *Kinds
	injector *ambient.Injector
}

// NewClassifier creates a classifier. Nil arguments select accessor.Default,
// DefaultKinds and a fresh injector.
func NewClassifier(acc accessor.Accessor, kinds *Kinds, injector *ambient.Injector) *Classifier {
	if acc == nil {
		acc = accessor.Default
	}
	if kinds == nil {
		kinds = DefaultKinds()
	}
	if injector == nil {
		injector = ambient.NewInjector()
	}
	return &Classifier{acc: acc, kinds: kinds, injector: injector}
}

// Kind returns the registered kind of node, or one inferred from its shape:
// custom and inherited widgets have one child, structs with a Children field
// have many, structs with a child field have one, and everything else is a
// leaf.
func (c *Classifier) Kind(node any) Kind {
	if kind, ok := c.kinds.Lookup(c.acc, node); ok {
		return kind
	}
	name := c.acc.TypeName(node)
	switch node.(type) {
	case core.StatelessWidget, core.StatefulWidget, core.InheritedWidget:
		return Kind{TypePrefix: name, Category: CategorySingle}
	}
	for _, label := range []string{"Children", "ChildrenWidgets"} {
		if v, err := c.acc.FieldByLabel(node, label); err == nil && holdsWidgets(v) {
			return Kind{TypePrefix: name, Category: CategoryMulti, ChildLabels: []string{label}}
		}
	}
	for _, label := range DefaultChildLabels {
		if v, err := c.acc.FieldByLabel(node, label); err == nil && holdsWidget(v) {
			return Kind{TypePrefix: name, Category: CategorySingle, ChildLabels: []string{label}}
		}
	}
	return Kind{TypePrefix: name, Category: CategoryLeaf}
}

func holdsWidget(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(core.Widget)
	return ok
}

func holdsWidgets(v any) bool {
	if _, ok := v.([]core.Widget); ok {
		return true
	}
	return holdsWidget(v)
}

// Resolve unwraps the transparent layers around env.Node: type-erased
// wrappers are opened, modifiers are moved onto the stack and present
// optional branches are entered. It fails with a ViewNotFoundError on an
// absent branch.
func (c *Classifier) Resolve(env Envelope) (Envelope, Kind, error) {
	for {
		kind := c.Kind(env.Node)
		if !kind.Category.Transparent() {
			return env, kind, nil
		}
		next, err := c.unwrapOnce(env, kind)
		if err != nil {
			return env, kind, err
		}
		env = next
	}
}

// unwrapOnce opens one transparent layer.
func (c *Classifier) unwrapOnce(env Envelope, kind Kind) (Envelope, error) {
	switch kind.Category {
	case CategoryWrapper:
		payload, err := c.acc.FieldByPath(env.Node, labelOr(kind, 0, "storage|view"))
		if err != nil {
			return env, err
		}
		env.Node = payload
	case CategoryModified:
		content, err := c.acc.FieldByPath(env.Node, labelOr(kind, 0, "content"))
		if err != nil {
			return env, err
		}
		modifier, err := c.acc.FieldByPath(env.Node, labelOr(kind, 1, "modifier"))
		if err != nil {
			return env, err
		}
		env = env.withInnerModifier(Modifier{Kind: c.acc.TypeName(modifier), Payload: modifier})
		env.Node = content
	case CategoryOptional:
		_, payload, err := c.branch(env.Node, kind)
		if err != nil {
			return env, err
		}
		env.Node = payload
	default:
		return env, &errors.NotSupportedError{Message: kind.Category.String() + " nodes have no transparent layer"}
	}
	return env, nil
}

// branch returns the name and payload of the present branch of an optional
// node.
func (c *Classifier) branch(node any, kind Kind) (string, any, error) {
	label := labelOr(kind, 0, BranchSome)
	storage, _, _ := strings.Cut(label, accessor.PathSeparator)
	holder, err := c.acc.FieldByLabel(node, storage)
	if err != nil {
		return "", nil, err
	}
	if isNil(holder) {
		return "", nil, &errors.ViewNotFoundError{Parent: c.acc.TypeName(node), Name: storage}
	}
	if storage == label {
		return storage, holder, nil
	}
	payload, err := c.acc.FieldByPath(node, label)
	if err != nil {
		return "", nil, err
	}
	return c.acc.TypeName(holder), payload, nil
}

// Children returns the envelopes of the structural children of a resolved
// envelope. Children keep the scope but start with an empty modifier stack.
func (c *Classifier) Children(env Envelope, kind Kind) ([]Envelope, error) {
	switch kind.Category {
	case CategoryLeaf:
		return nil, nil
	case CategoryTuple:
		return c.tupleChildren(env), nil
	case CategoryMulti:
		value, err := c.acc.FieldByPath(env.Node, labelOr(kind, 0, "Children"))
		if err != nil {
			return nil, err
		}
		return c.sequence(env, value), nil
	case CategorySingle:
		child, err := c.singleChild(env, kind)
		if err != nil {
			return nil, err
		}
		return []Envelope{child}, nil
	default:
		return nil, &errors.NotSupportedError{
			Message: kind.Category.String() + " nodes are unwrapped before their children are read",
		}
	}
}

func (c *Classifier) tupleChildren(env Envelope) []Envelope {
	fields := c.acc.Fields(env.Node)
	out := make([]Envelope, len(fields))
	for i, f := range fields {
		out[i] = env.child(f.Value)
	}
	return out
}

// sequence flattens the value of a multi-child field: slices give one child
// per element, tuples give their elements and anything else is one child.
func (c *Classifier) sequence(env Envelope, value any) []Envelope {
	if isNil(value) {
		return nil
	}
	if items, ok := asSlice(c.acc, value); ok {
		out := make([]Envelope, len(items))
		for i, item := range items {
			out[i] = env.child(item)
		}
		return out
	}
	inner, kind, err := c.Resolve(env.child(value))
	if err == nil && kind.Category == CategoryTuple {
		return c.tupleChildren(inner)
	}
	return []Envelope{env.child(value)}
}

func asSlice(acc accessor.Accessor, value any) ([]any, bool) {
	switch accessor.Unbox(value).Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	fields := acc.Fields(value)
	items := make([]any, len(fields))
	for i, f := range fields {
		items[i] = f.Value
	}
	return items, true
}

func (c *Classifier) singleChild(env Envelope, kind Kind) (Envelope, error) {
	if len(kind.ChildLabels) == 0 {
		switch w := env.Node.(type) {
		case core.InheritedWidget:
			child := w.ChildWidget()
			if isNil(child) {
				return Envelope{}, &errors.ViewNotFoundError{Parent: c.acc.TypeName(w), Name: "ChildWidget"}
			}
			return env.withScope(ambient.KeyOf(w), w).child(child), nil
		case core.StatelessWidget, core.StatefulWidget:
			body, err := c.build(env)
			if err != nil {
				return Envelope{}, err
			}
			return env.child(body), nil
		}
	}
	labels := kind.ChildLabels
	if len(labels) == 0 {
		labels = DefaultChildLabels
	}
	for _, label := range labels {
		child, err := c.acc.FieldByPath(env.Node, label)
		if err != nil {
			continue
		}
		if isNil(child) {
			return Envelope{}, &errors.ViewNotFoundError{Parent: c.acc.TypeName(env.Node), Name: label}
		}
		return env.child(child), nil
	}
	return Envelope{}, &errors.LabelNotFoundError{
		Label: strings.Join(labels, " or "),
		Type:  c.acc.TypeName(env.Node),
	}
}

// IsCustom reports whether node builds its child in code.
func IsCustom(node any) bool {
	switch node.(type) {
	case core.StatelessWidget, core.StatefulWidget:
		return true
	}
	return false
}

func labelOr(kind Kind, i int, fallback string) string {
	if i < len(kind.ChildLabels) && kind.ChildLabels[i] != "" {
		return kind.ChildLabels[i]
	}
	return fallback
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
