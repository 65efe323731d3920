package value

import (
	"errors"
	"reflect"

	"github.com/hasbyte1/go-linq/props"
)

// ErrNotArray is returned by [EqualArrays] when either argument is not a
// slice or array.
var ErrNotArray = errors.New("value: deep array comparison requires two arrays")

// Equal reports whether a and b are structurally equal.
//
// The comparison runs in a fixed order:
//
//  1. different typeof groups are never equal;
//  2. two undefined values are equal;
//  3. different constructors (e.g. a date and a map) are never equal;
//  4. primitives, functions, dates and regular expressions compare by their
//     canonical [Render]ing, so 1 and 1.0 are equal;
//  5. arrays must have the same length and pairwise Equal elements;
//  6. two nulls are equal, a null and a non-null are not;
//  7. objects must have the same number of properties and every property of
//     a must be [StrictEqual] to the same-named property of b.
//
// Step 7 is shallow while step 5 recurses. Maps whose keys are not strings
// compare entry by entry under the same rule, and struct fields that are
// not properties (unexported or tagged "-") must hold identical values.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka.TypeOf() != kb.TypeOf() {
		return false
	}
	if ka == KindUndefined {
		return true
	}
	if constructor(a, ka) != constructor(b, kb) {
		return false
	}
	switch ka {
	case KindBool, KindNumber, KindString, KindFunc, KindDate, KindRegexp:
		return Render(a) == Render(b)
	case KindArray:
		eq, _ := EqualArrays(a, b)
		return eq
	}
	if ka == KindNull || kb == KindNull {
		return ka == kb
	}

	keysA, okA := props.Keys(a)
	keysB, okB := props.Keys(b)
	if !okA || !okB {
		return entriesEqual(a, b)
	}
	if len(keysA) != len(keysB) {
		return false
	}
	for _, key := range keysA {
		if !StrictEqual(property(a, key), property(b, key)) {
			return false
		}
	}
	return hiddenEqual(a, b)
}

// entriesEqual compares two objects of one Go type that have no named
// properties: maps by their entries, anything else by reference.
func entriesEqual(a, b any) bool {
	ra, _ := indirect(reflect.ValueOf(a))
	rb, _ := indirect(reflect.ValueOf(b))
	if ra.Kind() != reflect.Map || rb.Kind() != reflect.Map {
		return sameReference(ra, rb)
	}
	if ra.Len() != rb.Len() {
		return false
	}
	iter := ra.MapRange()
	for iter.Next() {
		vb := rb.MapIndex(iter.Key())
		if !vb.IsValid() || !StrictEqual(iter.Value().Interface(), vb.Interface()) {
			return false
		}
	}
	return true
}

// hiddenEqual reports whether two structs of one type agree on every field
// that is not a property.
func hiddenEqual(a, b any) bool {
	ra, _ := indirect(reflect.ValueOf(a))
	rb, _ := indirect(reflect.ValueOf(b))
	if ra.Kind() != reflect.Struct {
		return true
	}
	for _, index := range props.Unlisted(ra.Type()) {
		fa, errA := ra.FieldByIndexErr(index)
		fb, errB := rb.FieldByIndexErr(index)
		if (errA == nil) != (errB == nil) {
			return false
		}
		if errA != nil {
			continue
		}
		if !sameReference(unwrap(fa), unwrap(fb)) {
			return false
		}
	}
	return true
}

// unwrap looks through a non-nil interface to the value it holds.
func unwrap(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		return rv.Elem()
	}
	return rv
}

// EqualArrays reports whether two arrays have the same length and
// pairwise [Equal] elements. It returns [ErrNotArray] when either argument
// is not an array.
func EqualArrays(a, b any) (bool, error) {
	if KindOf(a) != KindArray || KindOf(b) != KindArray {
		return false, ErrNotArray
	}
	ra, _ := indirect(reflect.ValueOf(a))
	rb, _ := indirect(reflect.ValueOf(b))
	if ra.Len() != rb.Len() {
		return false, nil
	}
	for i := 0; i < ra.Len(); i++ {
		if !Equal(ra.Index(i).Interface(), rb.Index(i).Interface()) {
			return false, nil
		}
	}
	return true, nil
}

// constructor identifies what built v. Every number shares one constructor
// regardless of its Go type, as do arrays; objects are told apart by their
// dereferenced Go type.
func constructor(v any, k Kind) any {
	if k != KindObject {
		return k
	}
	rv, _ := indirect(reflect.ValueOf(v))
	return rv.Type()
}

func property(v any, key string) any {
	if p, ok := props.Field(v, key); ok {
		return p
	}
	return Undefined
}

// StrictEqual reports whether a and b are identical without looking inside
// them: primitives and dates compare by value, NaN is never equal to itself,
// and maps, slices, pointers, functions and regular expressions compare by
// reference.
func StrictEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindUndefined, KindNull:
		return true
	case KindNumber:
		if IsNaN(a) || IsNaN(b) {
			return false
		}
		return CompareNumbers(a, b) == 0
	case KindBool:
		x, _ := Bool(a)
		y, _ := Bool(b)
		return x == y
	case KindString:
		x, _ := Str(a)
		y, _ := Str(b)
		return x == y
	case KindDate:
		x, _ := Time(a)
		y, _ := Time(b)
		return x.Equal(y)
	}
	return sameReference(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameReference(ra, rb reflect.Value) bool {
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if ra.Comparable() && rb.Comparable() {
		return ra.Equal(rb)
	}
	return false
}
