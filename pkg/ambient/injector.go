package ambient

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/hashicorp/go-multierror"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/errors"
)

var slotType = reflect.TypeFor[core.AmbientSlot]()

// Slot describes one ambient dependency declared by a widget.
type Slot struct {
	// Field is the struct field holding the dependency.
	Field string
	// Key is the capability key the dependency resolves by.
	Key string
	// Present reports whether the field is already filled.
	Present bool
}

// Injector fills the ambient slots of widgets.
type Injector struct {
	acc accessor.Accessor
}

// NewInjector creates an injector that names types with accessor.Default.
func NewInjector() *Injector {
	return &Injector{acc: accessor.Default}
}

// Slots lists the ambient fields of node in declaration order. Nodes that
// are not structs have none.
func (in *Injector) Slots(node any) []Slot {
	rv := accessor.Unbox(node)
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil
	}
	cp := copyOf(rv)
	var slots []Slot
	for i := 0; i < cp.NumField(); i++ {
		sf := cp.Type().Field(i)
		if !sf.Type.Implements(slotType) {
			continue
		}
		slot := slotAt(cp.Field(i))
		slots = append(slots, Slot{Field: sf.Name, Key: slot.AmbientKey(), Present: slot.Present()})
	}
	return slots
}

// Missing returns every unfilled slot of node that resolver cannot serve,
// formatted "Field: key".
func (in *Injector) Missing(node any, resolver Resolver) []string {
	var missing []string
	for _, s := range in.Slots(node) {
		if s.Present {
			continue
		}
		if _, ok := resolve(resolver, s.Key); !ok {
			missing = append(missing, s.Field+": "+s.Key)
		}
	}
	return missing
}

// Inject returns node with every unfilled ambient slot resolved. When node
// needs nothing it is returned unchanged; otherwise the result is a copy
// and node itself is never written. If any dependency is unresolved the
// error is a MissingAmbientError listing all of them.
//
// A pointer node yields a pointer to the filled copy.
func (in *Injector) Inject(node any, resolver Resolver) (any, error) {
	slots := in.Slots(node)
	pending := slots[:0:0]
	for _, s := range slots {
		if !s.Present {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		return node, nil
	}
	if missing := in.Missing(node, resolver); len(missing) > 0 {
		return nil, &errors.MissingAmbientError{View: in.acc.TypeName(node), Keys: missing}
	}

	cp := copyOf(accessor.Unbox(node))
	var result *multierror.Error
	for _, s := range pending {
		sf, _ := cp.Type().FieldByName(s.Field)
		field := cp.FieldByIndex(sf.Index)
		instance, _ := resolve(resolver, s.Key)
		filled, err := slotAt(field).Fill(instance)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Field, err))
			continue
		}
		if err := constructorFor(sf).Construct(field, filled); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Field, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		result.ErrorFormat = joinErrors
		return nil, err
	}
	if reflect.TypeOf(node).Kind() == reflect.Pointer {
		return cp.Addr().Interface(), nil
	}
	return cp.Interface(), nil
}

func resolve(resolver Resolver, key string) (any, bool) {
	if resolver == nil {
		return nil, false
	}
	return resolver.Resolve(key)
}

// copyOf returns an addressable copy of the struct rv.
func copyOf(rv reflect.Value) reflect.Value {
	cp := reflect.New(rv.Type()).Elem()
	if rv.CanInterface() {
		cp.Set(rv)
		return cp
	}
	if rv.CanAddr() {
		cp.Set(reflect.NewAt(rv.Type(), unsafe.Pointer(rv.UnsafeAddr())).Elem())
		return cp
	}
	panic(fmt.Sprintf("ambient: cannot copy read-only value of type %s", rv.Type()))
}

// slotAt reads the slot held by an addressable field.
func slotAt(field reflect.Value) core.AmbientSlot {
	if !field.CanInterface() {
		field = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	}
	return field.Interface().(core.AmbientSlot)
}

func joinErrors(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
