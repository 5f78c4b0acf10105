package accessor

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/go-drift/inspect/pkg/errors"
)

// PathSeparator separates labels in a field path.
const PathSeparator = "|"

// Reflect implements Accessor with the reflect package.
type Reflect struct{}

// Fields lists struct fields in declaration order, slice and array elements
// by index, and map entries sorted by their formatted key.
func (Reflect) Fields(value any) []Field {
	rv := Unbox(value)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Struct:
		rv = addressable(rv)
		fields := make([]Field, rv.NumField())
		for i := range fields {
			fields[i] = Field{
				Label: rv.Type().Field(i).Name,
				Value: valueOf(rv.Field(i)),
			}
		}
		return fields
	case reflect.Slice, reflect.Array:
		fields := make([]Field, rv.Len())
		for i := range fields {
			fields[i] = Field{Label: indexLabel(i), Value: valueOf(rv.Index(i))}
		}
		return fields
	case reflect.Map:
		keys := sortedKeys(rv)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fields[i] = Field{Label: "[" + k.label + "]", Value: valueOf(rv.MapIndex(k.value))}
		}
		return fields
	default:
		return nil
	}
}

// FieldByLabel returns the field, element or map entry addressed by label.
func (r Reflect) FieldByLabel(value any, label string) (any, error) {
	rv := Unbox(value)
	notFound := func() error {
		return &errors.LabelNotFoundError{Label: label, Type: r.TypeName(value)}
	}
	if !rv.IsValid() {
		return nil, notFound()
	}
	switch rv.Kind() {
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(label)
		if !ok || len(sf.Index) != 1 {
			return nil, notFound()
		}
		return valueOf(addressable(rv).Field(sf.Index[0])), nil
	case reflect.Slice, reflect.Array:
		i, ok := parseIndex(label)
		if !ok || i >= rv.Len() {
			return nil, notFound()
		}
		return valueOf(rv.Index(i)), nil
	case reflect.Map:
		inner, ok := strings.CutPrefix(label, "[")
		if !ok {
			return nil, notFound()
		}
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return nil, notFound()
		}
		for _, k := range sortedKeys(rv) {
			if k.label == inner {
				return valueOf(rv.MapIndex(k.value)), nil
			}
		}
		return nil, notFound()
	default:
		return nil, notFound()
	}
}

// FieldByPath applies FieldByLabel once per "|"-separated segment. A failing
// segment is reported with its index and the full path.
func (r Reflect) FieldByPath(value any, path string) (any, error) {
	current := value
	for i, label := range strings.Split(path, PathSeparator) {
		next, err := r.FieldByLabel(current, label)
		if err != nil {
			var lnf *errors.LabelNotFoundError
			if errors.As(err, &lnf) {
				lnf.Path = path
				lnf.Segment = i
			}
			return nil, err
		}
		current = next
	}
	return current, nil
}

// TypeName returns the declared name of value's unboxed type without package
// path or type arguments: core.Modified[widgets.Text,widgets.Opacity] is
// "Modified". A nil value is "nil".
func (Reflect) TypeName(value any) string {
	t := typeOf(value)
	if t == nil {
		return "nil"
	}
	name := t.Name()
	if name == "" {
		return stripQualifiers(t.String())
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// FullTypeName returns the name with type arguments, every package
// qualifier stripped: "Modified[Text,Opacity]".
func (Reflect) FullTypeName(value any) string {
	t := typeOf(value)
	if t == nil {
		return "nil"
	}
	if t.Name() == "" {
		return stripQualifiers(t.String())
	}
	return stripQualifiers(t.Name())
}

// NamespacedTypeName returns the import-path qualified name.
func (Reflect) NamespacedTypeName(value any) string {
	t := typeOf(value)
	if t == nil {
		return "nil"
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// IsOfType reports whether value's TypeName is prefix or its FullTypeName
// starts with prefix.
func (r Reflect) IsOfType(value any, prefix string) bool {
	return r.TypeName(value) == prefix || strings.HasPrefix(r.FullTypeName(value), prefix)
}

func typeOf(value any) reflect.Type {
	rv := Unbox(value)
	if !rv.IsValid() {
		return nil
	}
	if (rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}
	return rv.Type()
}

// stripQualifiers drops import paths and package names from every
// identifier in a type string.
func stripQualifiers(s string) string {
	var sb strings.Builder
	start := 0
	flush := func(end int) {
		token := s[start:end]
		if i := strings.LastIndexByte(token, '.'); i >= 0 {
			token = token[i+1:]
		}
		sb.WriteString(token)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', ']', ',', '*', ' ', '(', ')', '{', '}', ';':
			flush(i)
			sb.WriteByte(s[i])
			start = i + 1
		}
	}
	flush(len(s))
	return sb.String()
}

// addressable returns rv itself when it is addressable and an addressable
// copy otherwise, so unexported fields can be read through their address.
func addressable(rv reflect.Value) reflect.Value {
	if rv.CanAddr() {
		return rv
	}
	cp := reflect.New(rv.Type()).Elem()
	cp.Set(readable(rv))
	return cp
}

// readable lifts the read-only flag reflect puts on values reached through
// unexported fields. The returned value is never written to.
func readable(rv reflect.Value) reflect.Value {
	if rv.CanInterface() || !rv.CanAddr() {
		return rv
	}
	return reflect.NewAt(rv.Type(), unsafe.Pointer(rv.UnsafeAddr())).Elem()
}

// valueOf returns rv as an interface value. Values held in interface-typed
// slots come back as their dynamic value; nil slots come back as nil.
func valueOf(rv reflect.Value) any {
	rv = readable(rv)
	if !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}

func indexLabel(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func parseIndex(label string) (int, bool) {
	if len(label) < 3 || label[0] != '[' || label[len(label)-1] != ']' {
		return 0, false
	}
	i, err := strconv.Atoi(label[1 : len(label)-1])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

type mapKey struct {
	label string
	value reflect.Value
}

func sortedKeys(rv reflect.Value) []mapKey {
	keys := make([]mapKey, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, mapKey{label: fmt.Sprint(valueOf(k)), value: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].label < keys[j].label })
	return keys
}
