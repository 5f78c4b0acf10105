package inspect

import (
	"sort"
	"strings"

	"github.com/go-drift/inspect/pkg/accessor"
)

// Category is the unwrap protocol a node follows.
type Category int

// Categories in match priority order.
const (
	// CategoryLeaf nodes have no children.
	CategoryLeaf Category = iota
	// CategoryWrapper nodes erase the type of one payload.
	CategoryWrapper
	// CategoryModified nodes pair content with one modifier.
	CategoryModified
	// CategoryOptional nodes hold one of several branches, or none.
	CategoryOptional
	// CategoryTuple nodes group a fixed number of siblings.
	CategoryTuple
	// CategoryMulti nodes hold an ordered sequence of children.
	CategoryMulti
	// CategorySingle nodes hold exactly one child.
	CategorySingle
)

func (c Category) String() string {
	switch c {
	case CategoryLeaf:
		return "leaf"
	case CategoryWrapper:
		return "wrapper"
	case CategoryModified:
		return "modified"
	case CategoryOptional:
		return "optional"
	case CategoryTuple:
		return "tuple"
	case CategoryMulti:
		return "multi"
	case CategorySingle:
		return "single"
	default:
		return "unknown"
	}
}

// Transparent reports whether views skip over nodes of this category
// without adding a path step.
func (c Category) Transparent() bool {
	return c == CategoryWrapper || c == CategoryModified || c == CategoryOptional
}

// DefaultChildLabels are tried, in order, on single-child nodes whose kind
// names no labels.
var DefaultChildLabels = []string{"Child", "ChildWidget", "Content", "Body"}

// Kind tells the classifier how to unwrap nodes whose type matches
// TypePrefix.
type Kind struct {
	// TypePrefix matches a node's TypeName exactly or a prefix of its
	// FullTypeName.
	TypePrefix string
	// Category selects the unwrap protocol.
	Category Category
	// ChildLabels are the field paths holding children. Single-child kinds
	// use the first present one; multi-child kinds use the first; wrappers
	// use the first as the payload path; modified kinds use them as the
	// content and modifier paths.
	ChildLabels []string
	// Call names the root step of views over this kind. Empty uses the
	// lower-camel type name.
	Call string
}

// Kinds is a registry of node kinds.
type Kinds struct {
	byPrefix map[string]Kind
}

// NewKinds creates an empty registry.
func NewKinds() *Kinds {
	return &Kinds{byPrefix: make(map[string]Kind)}
}

// Register adds kinds, replacing earlier registrations with the same prefix.
func (k *Kinds) Register(kinds ...Kind) {
	if k.byPrefix == nil {
		k.byPrefix = make(map[string]Kind)
	}
	for _, kind := range kinds {
		k.byPrefix[kind.TypePrefix] = kind
	}
}

// Clone returns an independent copy of the registry.
func (k *Kinds) Clone() *Kinds {
	c := NewKinds()
	for p, kind := range k.byPrefix {
		c.byPrefix[p] = kind
	}
	return c
}

// Prefixes returns the registered prefixes in sorted order.
func (k *Kinds) Prefixes() []string {
	out := make([]string, 0, len(k.byPrefix))
	for p := range k.byPrefix {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the kind registered for node: an exact TypeName match if
// there is one, otherwise the longest registered prefix of FullTypeName.
func (k *Kinds) Lookup(acc accessor.Accessor, node any) (Kind, bool) {
	if k == nil {
		return Kind{}, false
	}
	if kind, ok := k.byPrefix[acc.TypeName(node)]; ok {
		return kind, true
	}
	full := acc.FullTypeName(node)
	var (
		best  Kind
		found bool
	)
	for prefix, kind := range k.byPrefix {
		if !matchesPrefix(full, prefix) {
			continue
		}
		if !found || len(prefix) > len(best.TypePrefix) ||
			(len(prefix) == len(best.TypePrefix) && kind.Category < best.Category) {
			best, found = kind, true
		}
	}
	return best, found
}

// matchesPrefix reports whether prefix is a prefix of full that ends on a
// name boundary, so "Text" matches "Text" but not "TextField".
func matchesPrefix(full, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(full, prefix) {
		return false
	}
	if len(full) == len(prefix) || strings.ContainsRune("[],", rune(prefix[len(prefix)-1])) {
		return true
	}
	return strings.ContainsRune("[],", rune(full[len(prefix)]))
}

// DefaultKinds returns a registry holding the framework's generic nodes and
// the widgets catalogue.
func DefaultKinds() *Kinds {
	k := NewKinds()
	k.Register(
		Kind{TypePrefix: "AnyWidget", Category: CategoryWrapper, ChildLabels: []string{"storage|view"}},
		Kind{TypePrefix: "Modified", Category: CategoryModified, ChildLabels: []string{"content", "modifier"}},
		Kind{TypePrefix: "Optional", Category: CategoryOptional, ChildLabels: []string{"some"}},
		Kind{TypePrefix: "Conditional", Category: CategoryOptional, ChildLabels: []string{"storage|view"}},
		Kind{TypePrefix: "Tuple2", Category: CategoryTuple},
		Kind{TypePrefix: "Tuple3", Category: CategoryTuple},
		Kind{TypePrefix: "Tuple4", Category: CategoryTuple},

		Kind{TypePrefix: "Text", Category: CategoryLeaf},
		Kind{TypePrefix: "Icon", Category: CategoryLeaf},
		Kind{TypePrefix: "Spacer", Category: CategoryLeaf},
		Kind{TypePrefix: "Divider", Category: CategoryLeaf},
		Kind{TypePrefix: "Button", Category: CategoryLeaf},
		Kind{TypePrefix: "Padding", Category: CategorySingle, ChildLabels: []string{"ChildWidget"}},
		Kind{TypePrefix: "Center", Category: CategorySingle, ChildLabels: []string{"Child"}},
		Kind{TypePrefix: "Align", Category: CategorySingle, ChildLabels: []string{"Child"}},
		Kind{TypePrefix: "SizedBox", Category: CategorySingle, ChildLabels: []string{"Child"}},
		Kind{TypePrefix: "GestureDetector", Category: CategorySingle, ChildLabels: []string{"Child"}},
		Kind{TypePrefix: "Row", Category: CategoryMulti, ChildLabels: []string{"ChildrenWidgets"}},
		Kind{TypePrefix: "Column", Category: CategoryMulti, ChildLabels: []string{"ChildrenWidgets"}},
		Kind{TypePrefix: "Stack", Category: CategoryMulti, ChildLabels: []string{"Children"}},
		Kind{TypePrefix: "Group", Category: CategoryMulti, ChildLabels: []string{"Content"}},
	)
	return k
}
