package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/inspect/pkg/errors"
	"github.com/go-drift/inspect/pkg/inspect"
)

// Finder locates views in the inspected tree.
type Finder interface {
	// Evaluate returns all matching views under root in depth-first
	// pre-order. With no match the error explains what blocked the search.
	Evaluate(root *inspect.View) ([]*inspect.View, error)
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	views  []*inspect.View
	finder Finder
	err    error
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *inspect.View {
	if len(r.views) == 0 {
		msg := fmt.Sprintf("Finder found no views: %s", r.description())
		if r.err != nil {
			msg += ": " + r.err.Error()
		}
		panic(msg)
	}
	return r.views[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *inspect.View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *inspect.View {
	if index < 0 || index >= len(r.views) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.views), r.description()))
	}
	return r.views[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*inspect.View {
	return r.views
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.views)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.views) > 0
}

// Err returns why nothing matched: usually an *errors.NotFoundError whose
// blockers name the nodes that could not be expanded. It is nil when a
// match was found.
func (r FinderResult) Err() error {
	if len(r.views) > 0 {
		return nil
	}
	if r.err == nil {
		return &errors.NotFoundError{}
	}
	return r.err
}

// Widget returns the node of the first match. Panics if no matches.
func (r FinderResult) Widget() any {
	return r.First().Node()
}

// --- Concrete finders ---

// predicateFinder matches views accepted by an inspect.Predicate.
type predicateFinder struct {
	pred inspect.Predicate
	desc string
}

func (f *predicateFinder) Evaluate(root *inspect.View) ([]*inspect.View, error) {
	matches, err := inspect.Collect(root, f.pred)
	if err != nil {
		return nil, err
	}
	views := make([]*inspect.View, len(matches))
	for i, m := range matches {
		views[i] = m.View()
	}
	return views, nil
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByType returns a finder that matches views whose node type name is
// prefix or whose full type name starts with it.
func ByType(prefix string) Finder {
	return &predicateFinder{pred: inspect.IsType(prefix), desc: fmt.Sprintf("ByType(%s)", prefix)}
}

// ByKey returns a finder that matches views whose key equals key.
func ByKey(key any) Finder {
	return &predicateFinder{pred: inspect.HasKey(key), desc: fmt.Sprintf("ByKey(%v)", key)}
}

// ByText returns a finder that matches [widgets.Text] with exact content.
func ByText(text string) Finder {
	return &predicateFinder{
		pred: func(v *inspect.View) bool {
			content, err := v.Text()
			return err == nil && content == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches [widgets.Text] containing
// the given substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		pred: func(v *inspect.View) bool {
			content, err := v.Text()
			return err == nil && strings.Contains(content, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate returns a finder that matches views satisfying fn.
func ByPredicate(fn func(*inspect.View) bool) Finder {
	return &predicateFinder{pred: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds views matching 'matching' that are descendants
// of views matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *inspect.View) ([]*inspect.View, error) {
	ancestors, err := f.of.Evaluate(root)
	if err != nil {
		return nil, err
	}
	var (
		results []*inspect.View
		lastErr error
	)
	seen := make(map[string]bool)
	for _, ancestor := range ancestors {
		matches, err := f.matching.Evaluate(ancestor)
		if err != nil {
			lastErr = err
			continue
		}
		for _, match := range matches {
			// The ancestor itself is not its own descendant.
			if match == ancestor || seen[match.PathToRoot()] {
				continue
			}
			seen[match.PathToRoot()] = true
			results = append(results, match)
		}
	}
	if len(results) == 0 {
		if lastErr == nil {
			lastErr = &errors.NotFoundError{}
		}
		return nil, lastErr
	}
	return results, nil
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches views satisfying 'matching'
// that are descendants of views matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds views matching 'matching' that are ancestors of
// views matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root *inspect.View) ([]*inspect.View, error) {
	descendants, err := f.of.Evaluate(root)
	if err != nil {
		return nil, err
	}
	candidates, err := f.matching.Evaluate(root)
	if err != nil {
		return nil, err
	}
	var results []*inspect.View
	seen := make(map[string]bool)
	for _, desc := range descendants {
		above := make(map[string]bool)
		for p := desc.Parent(); p != nil; p = p.Parent() {
			above[p.PathToRoot()] = true
		}
		for _, candidate := range candidates {
			path := candidate.PathToRoot()
			if above[path] && !seen[path] {
				seen[path] = true
				results = append(results, candidate)
			}
		}
	}
	if len(results) == 0 {
		return nil, &errors.NotFoundError{}
	}
	return results, nil
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches views satisfying 'matching'
// that are ancestors of views matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}
