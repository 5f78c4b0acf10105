package ambient

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/go-drift/inspect/pkg/core"
)

// forgingConstructor writes a slot into an unexported field by addressing
// the field's memory directly. It is the only writer in this module that
// bypasses the reflect API's export rules, and it only ever writes to a
// private copy made by the Injector.
type forgingConstructor struct{}

func (forgingConstructor) Construct(field reflect.Value, slot core.AmbientSlot) error {
	if !field.CanAddr() {
		return fmt.Errorf("field of type %s is not addressable", field.Type())
	}
	v := reflect.ValueOf(slot)
	if !v.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("slot of type %s is not assignable to %s", v.Type(), field.Type())
	}
	reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem().Set(v)
	return nil
}
