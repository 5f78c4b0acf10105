// Package ambient supplies the shared instances widgets depend on but that
// only a running app would normally provide.
//
// A widget declares such a dependency with a [core.Ambient] field. Outside a
// running app the field is empty and the widget's Build would panic, so the
// inspector resolves the dependency from a [Registry] and builds a filled
// copy of the widget with an [Injector]:
//
//	reg := ambient.NewRegistry()
//	reg.Provide(&Session{User: "ada"})
//
//	filled, err := ambient.NewInjector().Inject(Profile{}, reg)
//
// Capability keys are Go type strings ("*app.Session"), the same keys
// [core.KeyFor] produces.
//
// A Registry is not safe for concurrent mutation. Register everything before
// inspection starts and do not modify the registry while a traversal runs.
package ambient

import (
	"reflect"
	"sort"
)

// Resolver looks up instances by capability key.
type Resolver interface {
	Resolve(key string) (any, bool)
}

// Registry maps capability keys to instances.
type Registry struct {
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// KeyOf returns the capability key an instance is provided under.
func KeyOf(instance any) string {
	if instance == nil {
		return "nil"
	}
	return reflect.TypeOf(instance).String()
}

// Register stores instance under key, replacing any earlier entry.
func (r *Registry) Register(key string, instance any) {
	if r.entries == nil {
		r.entries = make(map[string]any)
	}
	r.entries[key] = instance
}

// Provide registers instance under its own type's key and returns the key.
func (r *Registry) Provide(instance any) string {
	key := KeyOf(instance)
	r.Register(key, instance)
	return key
}

// Resolve returns the instance registered under key.
func (r *Registry) Resolve(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.entries[key]
	return v, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
