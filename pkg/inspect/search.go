package inspect

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/errors"
)

// Traversal is the order a search visits nodes in.
type Traversal int

const (
	// BreadthFirst visits every node of a level before the next level.
	BreadthFirst Traversal = iota
	// DepthFirst visits a node's whole subtree before its next sibling.
	DepthFirst
)

func (t Traversal) String() string {
	switch t {
	case BreadthFirst:
		return "breadthFirst"
	case DepthFirst:
		return "depthFirst"
	default:
		return "unknown"
	}
}

// ParseTraversal parses "breadthFirst" or "depthFirst".
func ParseTraversal(s string) (Traversal, error) {
	switch s {
	case "breadthFirst", "breadth-first", "bfs":
		return BreadthFirst, nil
	case "depthFirst", "depth-first", "dfs":
		return DepthFirst, nil
	default:
		return BreadthFirst, fmt.Errorf("unknown search order %q", s)
	}
}

// Predicate selects views.
type Predicate func(v *View) bool

// SearchMatch is a view found by a search.
type SearchMatch struct {
	view *View
}

// View returns the matched view.
func (m SearchMatch) View() *View { return m.view }

// Envelope returns the matched node's envelope.
func (m SearchMatch) Envelope() Envelope { return m.view.Envelope() }

// Path returns the path to the matched node.
func (m SearchMatch) Path() string { return m.view.PathToRoot() }

type searchConfig struct {
	order    Traversal
	skip     int
	maxDepth int
}

// SearchOption configures Find.
type SearchOption func(*searchConfig)

// Order selects the traversal order.
func Order(t Traversal) SearchOption {
	return func(c *searchConfig) { c.order = t }
}

// SkipFound skips the first n matches.
func SkipFound(n int) SearchOption {
	return func(c *searchConfig) { c.skip = n }
}

// Find returns the first view under root, root included, that pred
// accepts. Nodes that cannot be expanded do not stop the search; if nothing
// matches, the returned *errors.NotFoundError lists them as blockers.
// Absent optional content is not a blocker.
func Find(root *View, pred Predicate, opts ...SearchOption) (SearchMatch, error) {
	cfg := searchConfig{order: root.in.order, maxDepth: root.in.maxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	var (
		found SearchMatch
		seen  int
		ok    bool
	)
	blockers := walk(root, cfg.order, cfg.maxDepth, func(v *View) bool {
		if !pred(v) {
			return true
		}
		if seen < cfg.skip {
			seen++
			return true
		}
		found, ok = SearchMatch{view: v}, true
		return false
	})
	if ok {
		return found, nil
	}
	return SearchMatch{}, &errors.NotFoundError{Skipped: seen, Blockers: blockers}
}

// FindAll returns every view under root, root included, that pred accepts,
// in depth-first pre-order.
func FindAll(root *View, pred Predicate) []SearchMatch {
	out, _ := Collect(root, pred)
	return out
}

// Collect is FindAll that explains an empty result: when nothing matches it
// returns a *errors.NotFoundError listing the nodes that could not be
// expanded.
func Collect(root *View, pred Predicate) ([]SearchMatch, error) {
	var out []SearchMatch
	blockers := walk(root, DepthFirst, root.in.maxDepth, func(v *View) bool {
		if pred(v) {
			out = append(out, SearchMatch{view: v})
		}
		return true
	})
	if len(out) == 0 {
		return nil, &errors.NotFoundError{Blockers: blockers}
	}
	return out, nil
}

// FindParent returns the nearest ancestor of v that pred accepts.
func FindParent(v *View, pred Predicate) (SearchMatch, error) {
	for p := v.parent; p != nil; p = p.parent {
		if pred(p) {
			return SearchMatch{view: p}, nil
		}
	}
	return SearchMatch{}, &errors.NotFoundError{}
}

// walk visits the views under root in order until visit returns false and
// returns the nodes it could not expand.
func walk(root *View, order Traversal, maxDepth int, visit func(*View) bool) []*errors.Blocker {
	var blocked *multierror.Error
	block := func(path string, err error) {
		b := &errors.Blocker{Path: path, Err: err}
		blocked = multierror.Append(blocked, b)
		errors.Report(&errors.InspectionError{
			Op:   "inspect.Find",
			Kind: errors.KindOf(err),
			Path: path,
			Err:  err,
		})
	}

	frontier := []*View{root}
	for len(frontier) > 0 {
		var v *View
		if order == DepthFirst {
			v = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			v = frontier[0]
			frontier = frontier[1:]
		}

		if !visit(v) {
			break
		}
		if v.kind == CategoryLeaf || v.cyclic() || v.recursive() {
			continue
		}
		if maxDepth > 0 && v.Depth() >= maxDepth {
			block(v.PathToRoot(), &errors.NotSupportedError{
				Message: "search depth limit " + strconv.Itoa(maxDepth) + " reached",
			})
			continue
		}

		children, err := v.expand()
		if err != nil {
			if !absent(err) {
				block(v.PathToRoot(), err)
			}
			continue
		}
		next := make([]*View, 0, len(children))
		for i, raw := range children {
			child, err := v.newChild(raw, v.childStepAt(i))
			if err != nil {
				if !absent(err) {
					block(v.path.Append(v.childStepAt(i)).String(), unwrapInspection(err))
				}
				continue
			}
			next = append(next, child)
		}
		if order == DepthFirst {
			for i := len(next) - 1; i >= 0; i-- {
				frontier = append(frontier, next[i])
			}
		} else {
			frontier = append(frontier, next...)
		}
	}

	if blocked == nil {
		return nil
	}
	out := make([]*errors.Blocker, 0, len(blocked.Errors))
	for _, err := range blocked.Errors {
		out = append(out, err.(*errors.Blocker))
	}
	return out
}

// cyclic reports whether v's node is reference-backed and already held by
// one of its ancestors.
func (v *View) cyclic() bool {
	ref, ok := accessor.Identity(v.env.Node)
	if !ok {
		return false
	}
	for p := v.parent; p != nil; p = p.parent {
		if pr, ok := accessor.Identity(p.env.Node); ok && pr == ref {
			return true
		}
	}
	return false
}

// recursive reports whether v is a custom widget equal to one of its
// ancestors, which would make expanding it loop forever.
func (v *View) recursive() bool {
	if !IsCustom(v.env.Node) {
		return false
	}
	for p := v.parent; p != nil; p = p.parent {
		if reflect.TypeOf(p.env.Node) == reflect.TypeOf(v.env.Node) && reflect.DeepEqual(p.env.Node, v.env.Node) {
			return true
		}
	}
	return false
}

func absent(err error) bool {
	return errors.KindOf(err) == errors.KindViewNotFound
}

func unwrapInspection(err error) error {
	var ie *errors.InspectionError
	if errors.As(err, &ie) && ie.Err != nil {
		return ie.Err
	}
	return err
}

// IsType matches views whose node is of the type prefix.
func IsType(prefix string) Predicate {
	return func(v *View) bool { return v.in.acc.IsOfType(v.env.Node, prefix) }
}

// HasText matches Text nodes with content s and Buttons labeled s.
func HasText(s string) Predicate {
	return func(v *View) bool {
		if text, err := v.Text(); err == nil {
			return text == s
		}
		if label, err := v.ButtonLabel(); err == nil {
			return label == s
		}
		return false
	}
}

// HasKey matches views whose Key equals key.
func HasKey(key any) Predicate {
	return func(v *View) bool {
		k := v.Key()
		return k != nil && reflect.DeepEqual(k, key)
	}
}
