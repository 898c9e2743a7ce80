package stash

import (
	"reflect"
)

// defaultName labels a checked value when the caller gives no name.
const defaultName = "value"

// CheckType returns a *TypeError unless v's dynamic type is assignable to
// one of the expected types. Interface types match any value implementing
// them. A nil v never matches.
//
// name labels v in the error message; pass "" for the generic "value".
// CheckType has no side effects on success.
func CheckType(v any, name string, expected ...reflect.Type) error {
	if matchesAny(reflect.TypeOf(v), expected) {
		return nil
	}
	return &TypeError{
		Name:     labelOr(name),
		Expected: typeNames(expected),
		Got:      typeName(v),
		Index:    -1,
	}
}

// Expect is the generic form of CheckType for a single expected type.
// It returns v converted to T.
func Expect[T any](v any, name string) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &TypeError{
		Name:     labelOr(name),
		Expected: []string{reflect.TypeFor[T]().String()},
		Got:      typeName(v),
		Index:    -1,
	}
}

// CheckListType returns a *TypeError unless v is a slice or array whose
// every element is assignable to elem. Element failures report the index
// of the first offending element and its runtime type.
func CheckListType(v any, elem reflect.Type, name string) error {
	return checkList(v, name, []string{elem.String()}, func(ev reflect.Value) bool {
		if !ev.IsValid() {
			return false
		}
		return ev.Type().AssignableTo(elem)
	})
}

// checkList walks a slice or array and applies match to each element.
// Elements held in interface slots are unwrapped to their dynamic value.
func checkList(v any, name string, expected []string, match func(reflect.Value) bool) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return &TypeError{
			Name:     labelOr(name),
			Expected: expected,
			Got:      typeName(v),
			List:     true,
			Index:    -1,
		}
	}
	for i := 0; i < rv.Len(); i++ {
		ev := rv.Index(i)
		if ev.Kind() == reflect.Interface {
			ev = ev.Elem()
		}
		if !match(ev) {
			got := "nil"
			if ev.IsValid() {
				got = ev.Type().String()
			}
			return &TypeError{
				Name:     labelOr(name),
				Expected: expected,
				Got:      got,
				List:     true,
				Index:    i,
			}
		}
	}
	return nil
}

// mappingNames is how mappings are named in type errors.
var mappingNames = []string{"map[string]any", "struct"}

// isMapping reports whether rv encodes as a JSON object: a map with
// string-kind keys or a struct, possibly behind pointers.
func isMapping(rv reflect.Value) bool {
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// checkMapping is CheckType for the mapping shape.
func checkMapping(v any, name string) error {
	if isMapping(reflect.ValueOf(v)) {
		return nil
	}
	return &TypeError{
		Name:     labelOr(name),
		Expected: mappingNames,
		Got:      typeName(v),
		Index:    -1,
	}
}

// normalizeRecords turns a single mapping into a one-element stream and
// otherwise requires a list of mappings.
func normalizeRecords(v any, name string) ([]any, error) {
	rv := reflect.ValueOf(v)
	if isMapping(rv) {
		return []any{v}, nil
	}
	if err := checkList(v, name, mappingNames, isMapping); err != nil {
		return nil, err
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// normalizeLines turns a single string into a one-element line sequence
// and otherwise requires a list of strings.
func normalizeLines(v any, name string) ([]string, error) {
	switch c := v.(type) {
	case string:
		return []string{c}, nil
	case []string:
		return c, nil
	}
	if err := CheckListType(v, stringType, name); err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(v)
	out := make([]string, rv.Len())
	for i := range out {
		ev := rv.Index(i)
		if ev.Kind() == reflect.Interface {
			ev = ev.Elem()
		}
		out[i] = ev.String()
	}
	return out, nil
}

var stringType = reflect.TypeFor[string]()

func matchesAny(t reflect.Type, expected []reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, e := range expected {
		if e != nil && t.AssignableTo(e) {
			return true
		}
	}
	return false
}

func typeNames(ts []reflect.Type) []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		if t == nil {
			names = append(names, "nil")
			continue
		}
		names = append(names, t.String())
	}
	return names
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func labelOr(name string) string {
	if name == "" {
		return defaultName
	}
	return name
}
