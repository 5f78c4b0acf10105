package inspect

import (
	"strings"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/ambient"
	"github.com/go-drift/inspect/pkg/errors"
)

// DefaultMaxDepth bounds how deep searches descend when no limit is set.
const DefaultMaxDepth = 256

// Option configures Inspect.
type Option func(*inspector)

// WithRegistry resolves ambient dependencies from reg.
func WithRegistry(reg *ambient.Registry) Option {
	return func(in *inspector) { in.registry = reg }
}

// WithKinds classifies nodes with kinds instead of DefaultKinds.
func WithKinds(kinds *Kinds) Option {
	return func(in *inspector) { in.kinds = kinds }
}

// WithAccessor reads nodes with acc instead of accessor.Default.
func WithAccessor(acc accessor.Accessor) Option {
	return func(in *inspector) { in.acc = acc }
}

// WithMaxDepth limits how many steps below the root searches descend.
func WithMaxDepth(depth int) Option {
	return func(in *inspector) { in.maxDepth = depth }
}

// WithSearchOrder sets the order Find uses when no Order option is given.
func WithSearchOrder(order Traversal) Option {
	return func(in *inspector) { in.order = order }
}

// WithTreeDepth limits the depth of Tree and Dump output.
func WithTreeDepth(depth int) Option {
	return func(in *inspector) { in.treeDepth = depth }
}

// inspector is the configuration shared by every view of one inspection.
type inspector struct {
	acc       accessor.Accessor
	kinds     *Kinds
	registry  *ambient.Registry
	maxDepth  int
	treeDepth int
	order     Traversal
	cls       *Classifier
}

// View is a node of an inspected tree together with the path that reached
// it. Every navigation method returns a new View one step further along,
// or an *errors.InspectionError naming the path it failed at.
//
//	root, _ := inspect.Inspect(tree)
//	label, err := root.ChildAt(1)   // container().child(1)
type View struct {
	in     *inspector
	parent *View
	env    Envelope
	kind   Category
	def    Kind
	path   Path
	// raw is the envelope before transparent layers were unwrapped.
	raw Envelope

	children    []Envelope
	childrenErr error
	expanded    bool
}

// Inspect returns the root view of node.
func Inspect(node any, opts ...Option) (*View, error) {
	in := &inspector{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(in)
	}
	if in.acc == nil {
		in.acc = accessor.Default
	}
	if in.kinds == nil {
		in.kinds = DefaultKinds()
	}
	in.cls = NewClassifier(in.acc, in.kinds, ambient.NewInjector())

	raw := Envelope{Node: node, Ambient: ambient.NewScope(in.registry)}
	env, kind, err := in.cls.Resolve(raw)
	call := kind.Call
	if call == "" {
		call = lowerCamel(in.acc.TypeName(env.Node))
	}
	root := &View{in: in, raw: raw, env: env, def: kind, kind: kind.Category, path: RootPath(call)}
	if err != nil {
		return nil, root.fail("Inspect", err)
	}
	return root, nil
}

// newChild creates the view of raw reached from v by step.
func (v *View) newChild(raw Envelope, step Step) (*View, error) {
	env, kind, err := v.in.cls.Resolve(raw)
	child := &View{in: v.in, parent: v, raw: raw, env: env, def: kind, kind: kind.Category, path: v.path.Append(step)}
	if err != nil {
		return nil, child.fail("Resolve", err)
	}
	return child, nil
}

func (v *View) expand() ([]Envelope, error) {
	if !v.expanded {
		v.children, v.childrenErr = v.in.cls.Children(v.env, v.def)
		v.expanded = true
	}
	return v.children, v.childrenErr
}

// fail wraps err with v's path. Errors that already carry a path pass
// through unchanged.
func (v *View) fail(op string, err error) error {
	var ie *errors.InspectionError
	if errors.As(err, &ie) {
		return err
	}
	return &errors.InspectionError{
		Op:   "inspect." + op,
		Kind: errors.KindOf(err),
		Path: v.path.String(),
		Err:  err,
		Hint: hintFor(err),
	}
}

func hintFor(err error) string {
	switch errors.KindOf(err) {
	case errors.KindMissingAmbient:
		return "register the instances with ambient.Registry.Provide and pass it with inspect.WithRegistry"
	case errors.KindBuild:
		return "the widget's Build panicked; see the recovered value"
	default:
		return ""
	}
}

// Child returns the only child of a single-child node.
func (v *View) Child() (*View, error) {
	if v.kind != CategorySingle {
		return nil, v.fail("Child", &errors.NotSupportedError{
			Message: v.TypeName() + " is a " + v.kind.String() + " node; Child needs a single-child node" + v.indexHint(),
		})
	}
	children, err := v.expand()
	if err != nil {
		return nil, v.fail("Child", err)
	}
	return v.newChild(children[0], childStep())
}

func (v *View) indexHint() string {
	if v.kind == CategoryMulti || v.kind == CategoryTuple {
		return " (use ChildAt)"
	}
	return ""
}

// ChildAt returns the child at index of a multi-child or tuple node.
func (v *View) ChildAt(index int) (*View, error) {
	if v.kind != CategoryMulti && v.kind != CategoryTuple {
		return nil, v.fail("ChildAt", &errors.NotSupportedError{
			Message: v.TypeName() + " is a " + v.kind.String() + " node; ChildAt needs a multi-child node",
		})
	}
	children, err := v.expand()
	if err != nil {
		return nil, v.fail("ChildAt", err)
	}
	if index < 0 || index >= len(children) {
		return nil, v.fail("ChildAt", &errors.IndexOutOfBoundsError{Index: index, Count: len(children)})
	}
	return v.newChild(children[index], childAtStep(index))
}

// ChildCount returns the number of structural children.
func (v *View) ChildCount() (int, error) {
	children, err := v.expand()
	if err != nil {
		return 0, v.fail("ChildCount", err)
	}
	return len(children), nil
}

// Children returns every child view. It fails on the first child that
// cannot be resolved.
func (v *View) Children() ([]*View, error) {
	children, err := v.expand()
	if err != nil {
		return nil, v.fail("Children", err)
	}
	out := make([]*View, 0, len(children))
	for i, raw := range children {
		child, err := v.newChild(raw, v.childStepAt(i))
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// childStepAt is the step Children and searches use for child i.
func (v *View) childStepAt(i int) Step {
	if v.kind == CategorySingle {
		return childStep()
	}
	return childAtStep(i)
}

// Parent returns the view this one was reached from, nil for the root.
func (v *View) Parent() *View { return v.parent }

// Modifiers returns the modifiers applied to the node in application order.
func (v *View) Modifiers() []Modifier {
	out := make([]Modifier, len(v.env.Modifiers))
	copy(out, v.env.Modifiers)
	return out
}

// ModifierCount returns how many modifiers of kind are applied.
func (v *View) ModifierCount(kind string) int {
	n := 0
	for _, m := range v.env.Modifiers {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Modifier returns the index-th modifier of kind, counting in application
// order.
func (v *View) Modifier(kind string, index int) (*View, error) {
	var matches []Modifier
	for _, m := range v.env.Modifiers {
		if m.Kind == kind {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return nil, v.fail("Modifier", &errors.ViewNotFoundError{Parent: v.TypeName(), Name: kind})
	}
	if index < 0 || index >= len(matches) {
		return nil, v.fail("Modifier", &errors.IndexOutOfBoundsError{Index: index, Count: len(matches)})
	}
	return v.newChild(Envelope{Node: matches[index].Payload, Ambient: v.env.Ambient}, modifierStep(kind, index))
}

// ModifierAttribute reads path from the last applied modifier of kind.
func (v *View) ModifierAttribute(kind, path string) (any, error) {
	for i := len(v.env.Modifiers) - 1; i >= 0; i-- {
		m := v.env.Modifiers[i]
		if m.Kind != kind {
			continue
		}
		value, err := v.in.acc.FieldByPath(m.Payload, path)
		if err != nil {
			return nil, v.fail("ModifierAttribute", err)
		}
		return value, nil
	}
	return nil, v.fail("ModifierAttribute", &errors.ViewNotFoundError{Parent: v.TypeName(), Name: kind})
}

// Attribute returns a view of the node's field label.
func (v *View) Attribute(label string) (*View, error) {
	value, err := v.in.acc.FieldByLabel(v.env.Node, label)
	if err != nil {
		return nil, v.fail("Attribute", err)
	}
	return v.newChild(Envelope{Node: value, Ambient: v.env.Ambient}, attributeStep(label))
}

// AttributePath returns a view of the field at a "|"-separated path.
func (v *View) AttributePath(path string) (*View, error) {
	value, err := v.in.acc.FieldByPath(v.env.Node, path)
	if err != nil {
		return nil, v.fail("AttributePath", err)
	}
	return v.newChild(Envelope{Node: value, Ambient: v.env.Ambient}, attributeStep(path))
}

// Value returns the node.
func (v *View) Value() any { return v.env.Node }

// ValueAs returns the node of v as a T.
func ValueAs[T any](v *View) (T, error) {
	out, err := accessor.Cast[T](v.env.Node)
	if err != nil {
		return out, v.fail("ValueAs", err)
	}
	return out, nil
}

// AttributeAs reads the field at path and returns it as a T.
//
//	lines, err := inspect.AttributeAs[int](text, "MaxLines")
func AttributeAs[T any](v *View, path string) (T, error) {
	var zero T
	value, err := v.in.acc.FieldByPath(v.env.Node, path)
	if err != nil {
		return zero, v.fail("AttributeAs", err)
	}
	out, err := accessor.Cast[T](value)
	if err != nil {
		return zero, v.fail("AttributeAs", err)
	}
	return out, nil
}

// As returns v when its node is of the type prefix and a TypeMismatchError
// otherwise.
func (v *View) As(prefix string) (*View, error) {
	if v.in.acc.IsOfType(v.env.Node, prefix) {
		return v, nil
	}
	err := v.fail("As", &errors.TypeMismatchError{Expected: prefix, Actual: v.in.acc.FullTypeName(v.env.Node)})
	if ie, ok := err.(*errors.InspectionError); ok {
		ie.Hint = "node is a " + v.kind.String() + " node"
	}
	return nil, err
}

// Branch returns the named branch of the optional or conditional node that
// v was unwrapped from: BranchSome, BranchTrue or BranchFalse. Naming the
// absent branch fails with a ViewNotFoundError.
func (v *View) Branch(name string) (*View, error) {
	cls := v.in.cls
	env := v.raw
	for {
		kind := cls.Kind(env.Node)
		switch kind.Category {
		case CategoryOptional:
			present, payload, err := cls.branch(env.Node, kind)
			if err != nil || present != name {
				if err == nil || errors.KindOf(err) == errors.KindViewNotFound {
					err = &errors.ViewNotFoundError{Parent: cls.acc.TypeName(env.Node), Name: name}
				}
				return nil, v.fail("Branch", err)
			}
			env.Node = payload
			branch, err := v.newChild(env, branchStep(name))
			if err != nil {
				return nil, err
			}
			branch.parent = v.parent
			return branch, nil
		case CategoryWrapper, CategoryModified:
			next, err := cls.unwrapOnce(env, kind)
			if err != nil {
				return nil, v.fail("Branch", err)
			}
			env = next
		default:
			return nil, v.fail("Branch", &errors.NotSupportedError{
				Message: v.TypeName() + " is not an optional or conditional node",
			})
		}
	}
}

// Key returns the value of the last applied KeyModifier, or the node's own
// key.
func (v *View) Key() any {
	for i := len(v.env.Modifiers) - 1; i >= 0; i-- {
		if v.env.Modifiers[i].Kind == "KeyModifier" {
			if key, err := v.in.acc.FieldByLabel(v.env.Modifiers[i].Payload, "Value"); err == nil {
				return key
			}
		}
	}
	if w, ok := v.env.Node.(interface{ Key() any }); ok {
		return w.Key()
	}
	return nil
}

// Category returns the unwrap protocol of the node.
func (v *View) Category() Category { return v.kind }

// TypeName returns the node's type name.
func (v *View) TypeName() string { return v.in.acc.TypeName(v.env.Node) }

// Node returns the node.
func (v *View) Node() any { return v.env.Node }

// Envelope returns a copy of the node's envelope.
func (v *View) Envelope() Envelope {
	env := v.env
	env.Modifiers = v.Modifiers()
	return env
}

// Path returns the path from the root to v.
func (v *View) Path() Path { return v.path }

// PathToRoot renders the path from the root to v.
func (v *View) PathToRoot() string { return v.path.String() }

// Depth returns the number of steps below the root.
func (v *View) Depth() int { return v.path.Len() - 1 }

func (v *View) String() string {
	var sb strings.Builder
	sb.WriteString(v.path.String())
	sb.WriteString(": ")
	sb.WriteString(v.in.acc.FullTypeName(v.env.Node))
	return sb.String()
}
