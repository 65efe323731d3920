package props

import (
	"reflect"
	"sort"
	"strings"
)

// Record is a property bag: the shape a join produces when it merges two
// elements without a projector.
type Record = map[string]any

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation lookup
//
// Paths are dot-separated property names resolved one segment at a time
// against maps with string keys, structs and pointers to either:
//
//	v := map[string]any{
//	    "user": User{Name: "Alice", Address: Address{City: "London"}},
//	}
//
//	Lookup(v, "user.Address.City")  → "London", true
//	Lookup(v, "user.missing")       → nil, false
//	Has(v, "user.Name")             → true
// ─────────────────────────────────────────────────────────────────────────────

// Lookup resolves the dot-notation path against v.
// Returns false when any segment does not exist.
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := Field(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Has reports whether the dot-notation path exists in v.
func Has(v any, path string) bool {
	_, ok := Lookup(v, path)
	return ok
}

// Field returns the property of v called name, without path splitting.
//
// Struct properties are exported fields, named by their json tag when one
// is present. A field tagged "-" is not a property.
func Field(v any, name string) (any, bool) {
	if m, ok := v.(Record); ok {
		val, found := m[name]
		return val, found
	}
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			if f.name != name {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				return nil, false
			}
			return fv.Interface(), true
		}
	}
	return nil, false
}

// Keys returns the property names of v in a stable order: sorted for maps,
// declaration order for structs. Returns false when v has no properties to
// enumerate (nil, numbers, strings, slices, …).
func Keys(v any) ([]string, bool) {
	if m, ok := v.(Record); ok {
		return sortedKeys(m), true
	}
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return keys, true
	case reflect.Struct:
		fields := structFields(rv.Type())
		keys := make([]string, len(fields))
		for i, f := range fields {
			keys[i] = f.name
		}
		return keys, true
	}
	return nil, false
}

// ToRecord returns v as a [Record]. A Record is returned as is; other maps
// and structs are copied property by property.
func ToRecord(v any) (Record, bool) {
	if m, ok := v.(Record); ok {
		return m, true
	}
	keys, ok := Keys(v)
	if !ok {
		return nil, false
	}
	out := make(Record, len(keys))
	for _, k := range keys {
		out[k], _ = Field(v, k)
	}
	return out, true
}

func sortedKeys(m Record) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

type structField struct {
	name  string
	index []int
}

func structFields(t reflect.Type) []structField {
	fields := make([]structField, 0, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous {
			continue
		}
		if name, ok := propertyName(f); ok {
			fields = append(fields, structField{name: name, index: f.Index})
		}
	}
	return fields
}

// Unlisted returns the index paths of the fields of struct type t that are
// not properties: unexported fields and fields tagged "-". Embedded fields
// are not reported themselves; the fields they promote are.
//
// It returns nil when t is not a struct.
func Unlisted(t reflect.Type) [][]int {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var hidden [][]int
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous {
			continue
		}
		if _, ok := propertyName(f); !ok {
			hidden = append(hidden, f.Index)
		}
	}
	return hidden
}

// propertyName names the property f exposes, or reports false when f is
// not a property.
func propertyName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	name := f.Name
	if tag, ok := f.Tag.Lookup("json"); ok {
		tagName, _, _ := strings.Cut(tag, ",")
		if tagName == "-" {
			return "", false
		}
		if tagName != "" {
			name = tagName
		}
	}
	return name, true
}
