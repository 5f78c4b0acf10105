package ambient

import (
	"fmt"
	"reflect"

	"github.com/go-drift/inspect/pkg/core"
)

// Constructor writes a filled ambient slot into a field of a copy of a
// widget. field is always addressable and belongs to the copy.
type Constructor interface {
	Construct(field reflect.Value, slot core.AmbientSlot) error
}

// explicitConstructor assigns through the reflect API. It only serves
// exported fields.
type explicitConstructor struct{}

func (explicitConstructor) Construct(field reflect.Value, slot core.AmbientSlot) error {
	if !field.CanSet() {
		return fmt.Errorf("field of type %s is not settable", field.Type())
	}
	v := reflect.ValueOf(slot)
	if !v.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("slot of type %s is not assignable to %s", v.Type(), field.Type())
	}
	field.Set(v)
	return nil
}

// constructorFor picks the explicit constructor for exported fields and
// falls back to the forging constructor for unexported ones.
func constructorFor(sf reflect.StructField) Constructor {
	if sf.IsExported() {
		return explicitConstructor{}
	}
	return forgingConstructor{}
}
