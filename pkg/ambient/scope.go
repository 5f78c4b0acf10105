package ambient

import "sort"

// Scope layers entries contributed by enclosing widgets over a base
// resolver. Scopes are immutable: With returns a new scope and leaves the
// receiver unchanged, so sibling subtrees never see each other's entries.
type Scope struct {
	base   Resolver
	parent *Scope
	key    string
	value  any
}

// NewScope creates a scope over base. A nil base resolves nothing.
func NewScope(base Resolver) *Scope {
	return &Scope{base: base}
}

// With returns a scope in which key resolves to value.
func (s *Scope) With(key string, value any) *Scope {
	var base Resolver
	if s != nil {
		base = s.base
	}
	return &Scope{base: base, parent: s, key: key, value: value}
}

// Resolve returns the innermost entry for key, falling back to the base.
func (s *Scope) Resolve(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key != "" && cur.key == key {
			return cur.value, true
		}
	}
	if s.base == nil {
		return nil, false
	}
	return s.base.Resolve(key)
}

// Keys returns the keys added with With, innermost shadowing outer, in
// sorted order. Base keys are not included.
func (s *Scope) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key == "" || seen[cur.key] {
			continue
		}
		seen[cur.key] = true
		keys = append(keys, cur.key)
	}
	sort.Strings(keys)
	return keys
}
