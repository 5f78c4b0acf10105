package core

import (
	"fmt"
	"reflect"

	"github.com/go-drift/inspect/pkg/errors"
)

// Ambient is a widget's dependency on a shared instance that the running
// app supplies. The zero value is unfilled.
type Ambient[T any] struct {
	value *T
}

// AmbientSlot is the type-independent view of an Ambient field.
type AmbientSlot interface {
	// AmbientKey is the capability key the slot is resolved by.
	AmbientKey() string
	// Present reports whether the slot has been filled.
	Present() bool
	// Fill returns a filled copy of the slot. It fails when instance is not
	// assignable to the slot's type.
	Fill(instance any) (AmbientSlot, error)
}

// AmbientOf returns a filled Ambient holding v.
func AmbientOf[T any](v T) Ambient[T] {
	return Ambient[T]{value: &v}
}

// KeyFor returns the capability key for dependencies of type T.
func KeyFor[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Get returns the instance. It panics when the slot was never filled.
func (a Ambient[T]) Get() T {
	if a.value == nil {
		panic(fmt.Sprintf("no ambient instance of %s; the widget was built outside a scope that provides it", KeyFor[T]()))
	}
	return *a.value
}

// Present reports whether the slot has been filled.
func (a Ambient[T]) Present() bool {
	return a.value != nil
}

// AmbientKey returns KeyFor[T]().
func (a Ambient[T]) AmbientKey() string {
	return KeyFor[T]()
}

// Fill returns a copy of a holding instance.
func (a Ambient[T]) Fill(instance any) (AmbientSlot, error) {
	v, ok := instance.(T)
	if !ok {
		return nil, &errors.TypeMismatchError{
			Expected: KeyFor[T](),
			Actual:   fmt.Sprintf("%T", instance),
		}
	}
	return AmbientOf(v), nil
}
