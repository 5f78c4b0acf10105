// Package accessor reads the structure of arbitrary widget values by
// reflection.
//
// Widget trees mix exported struct literals with generic framework nodes
// whose fields are unexported. An [Accessor] gives uniform, read-only access
// to both: fields are addressed by label, nested fields by a "|"-separated
// path, and every value is unboxed (interfaces, pointers and reflect.Value
// wrappers stripped) before its type is named or its fields are read.
//
//	text, err := accessor.Default.FieldByPath(node, "content|Content")
//
// Accessors never modify the value they read. Reading an unexported field
// copies the enclosing struct first and reads the copy.
package accessor

import (
	"reflect"
)

// Field is one labeled part of a value.
type Field struct {
	// Label addresses the field: the struct field name, "[i]" for slice and
	// array elements, "[key]" for map entries.
	Label string
	// Value is the field's value with its static interface box removed.
	Value any
}

// Accessor reads fields and type names of arbitrary values.
type Accessor interface {
	// Fields lists the labeled parts of value in a stable order.
	Fields(value any) []Field
	// FieldByLabel returns the part of value addressed by label.
	FieldByLabel(value any, label string) (any, error)
	// FieldByPath follows a "|"-separated sequence of labels.
	FieldByPath(value any, path string) (any, error)
	// TypeName is the declared name without package path or type arguments.
	TypeName(value any) string
	// FullTypeName keeps type arguments but strips every package qualifier.
	FullTypeName(value any) string
	// NamespacedTypeName is the fully qualified type name.
	NamespacedTypeName(value any) string
	// IsOfType reports whether TypeName equals prefix or FullTypeName
	// starts with it.
	IsOfType(value any, prefix string) bool
}

// Default is the reflection-based accessor.
var Default Accessor = Reflect{}

var reflectValueType = reflect.TypeFor[reflect.Value]()

// Unbox strips interface boxes, non-nil pointers and reflect.Value wrappers
// from v. The result is invalid only for a nil v.
func Unbox(v any) reflect.Value {
	var rv reflect.Value
	if wrapped, ok := v.(reflect.Value); ok {
		rv = wrapped
	} else {
		rv = reflect.ValueOf(v)
	}
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Interface, reflect.Pointer:
			if rv.IsNil() {
				return rv
			}
			rv = rv.Elem()
		default:
			if rv.Type() == reflectValueType {
				rv = valueOf(rv).(reflect.Value)
				continue
			}
			return rv
		}
	}
	return rv
}

// Ref identifies a reference-backed value by its pointer type and address.
type Ref struct {
	Type reflect.Type
	Addr uintptr
}

// Identity returns the Ref of the first pointer met while unboxing v. It
// reports false for values that are not reference-backed and for pointers
// to zero-size values, which may all share one address.
func Identity(v any) (Ref, bool) {
	var rv reflect.Value
	if wrapped, ok := v.(reflect.Value); ok {
		rv = wrapped
	} else {
		rv = reflect.ValueOf(v)
	}
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return Ref{}, false
			}
			rv = rv.Elem()
		case reflect.Pointer:
			if rv.IsNil() || rv.Type().Elem().Size() == 0 {
				return Ref{}, false
			}
			return Ref{Type: rv.Type(), Addr: rv.Pointer()}, true
		default:
			return Ref{}, false
		}
	}
	return Ref{}, false
}
