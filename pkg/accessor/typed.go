package accessor

import (
	"reflect"

	"github.com/go-drift/inspect/pkg/errors"
)

// Cast converts value to T. The value is tried as is first and then with
// its boxes stripped, so a *Text casts to Text and a Text held in an
// interface casts to Text.
func Cast[T any](value any) (T, error) {
	if v, ok := value.(T); ok {
		return v, nil
	}
	rv := Unbox(value)
	if rv.IsValid() && rv.CanInterface() {
		if v, ok := rv.Interface().(T); ok {
			return v, nil
		}
	}
	var zero T
	return zero, &errors.TypeMismatchError{
		Expected: stripQualifiers(reflect.TypeFor[T]().String()),
		Actual:   Default.FullTypeName(value),
	}
}

// FieldAs reads the field at path with the Default accessor and casts it
// to T.
//
//	label, err := accessor.FieldAs[string](button, "Label")
func FieldAs[T any](value any, path string) (T, error) {
	field, err := Default.FieldByPath(value, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return Cast[T](field)
}
