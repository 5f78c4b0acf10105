package accessor

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultTreeDepth bounds Tree when TreeOptions.MaxDepth is zero.
const DefaultTreeDepth = 32

const (
	cycleMarker    = "<cycle>"
	maxDepthMarker = "<max depth>"
)

// TreeOptions controls Tree.
type TreeOptions struct {
	// Accessor reads the values. Nil uses Default.
	Accessor Accessor
	// MaxDepth stops descending below this depth. Zero uses DefaultTreeDepth.
	MaxDepth int
	// Expand returns extra children to show under value, after its fields.
	Expand func(value any) []Field
}

// Node is one entry of an attribute tree.
type Node struct {
	Label    string  `json:"label"`
	Type     string  `json:"type"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Tree builds the attribute tree of value. A pointer whose Ref is already
// on the path from the root is not followed again; it appears with the
// value "<cycle>".
func Tree(value any, opts TreeOptions) *Node {
	if opts.Accessor == nil {
		opts.Accessor = Default
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultTreeDepth
	}
	b := treeBuilder{opts: opts, ancestors: make(map[Ref]bool)}
	return b.build("", value, 0)
}

type treeBuilder struct {
	opts      TreeOptions
	ancestors map[Ref]bool
}

func (b *treeBuilder) build(label string, value any, depth int) *Node {
	n := &Node{Label: label, Type: b.opts.Accessor.FullTypeName(value)}
	if ref, ok := Identity(value); ok {
		if b.ancestors[ref] {
			n.Value = cycleMarker
			return n
		}
		b.ancestors[ref] = true
		defer delete(b.ancestors, ref)
	}
	if scalar, ok := formatScalar(value); ok {
		n.Value = scalar
		return n
	}
	if depth >= b.opts.MaxDepth {
		n.Value = maxDepthMarker
		return n
	}
	fields := b.opts.Accessor.Fields(value)
	if b.opts.Expand != nil {
		fields = append(fields, b.opts.Expand(value)...)
	}
	for _, f := range fields {
		n.Children = append(n.Children, b.build(f.Label, f.Value, depth+1))
	}
	return n
}

// formatScalar renders values that have no fields worth descending into.
func formatScalar(value any) (string, bool) {
	rv := Unbox(value)
	if !rv.IsValid() {
		return "nil", true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return "nil", true
	case reflect.String:
		return fmt.Sprintf("%q", rv.String()), true
	case reflect.Bool:
		return fmt.Sprint(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprint(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprint(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return fmt.Sprint(rv.Float()), true
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Complex()), true
	case reflect.Func:
		if rv.IsNil() {
			return "nil", true
		}
		return "func", true
	case reflect.Chan, reflect.UnsafePointer:
		return rv.Type().String(), true
	case reflect.Struct:
		if rv.NumField() == 0 {
			return "{}", true
		}
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "nil", true
		}
	}
	return "", false
}

// Print renders the attribute tree of value with the Default accessor, one
// "label: Type = value" line per node, indented two spaces per level.
func Print(value any) string {
	return Tree(value, TreeOptions{}).String()
}

// String renders the tree the way Print does.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Label != "" {
		sb.WriteString(n.Label)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Type)
	if n.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(n.Value)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.write(sb, indent+1)
	}
}
