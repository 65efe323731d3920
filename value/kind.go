package value

import (
	"reflect"
	"regexp"
	"time"
)

// Kind classifies a dynamic value the way the query operators see it.
type Kind int

const (
	// KindUndefined is the kind of [Undefined]: a property that does not exist.
	KindUndefined Kind = iota
	// KindNull is the kind of nil and of nil pointers, interfaces and funcs.
	KindNull
	KindBool
	// KindNumber covers every Go integer and floating-point kind.
	KindNumber
	KindString
	KindFunc
	// KindDate is time.Time (or a pointer to one).
	KindDate
	// KindRegexp is regexp.Regexp (or a pointer to one).
	KindRegexp
	// KindArray covers slices and arrays.
	KindArray
	// KindObject covers maps, structs and anything else with properties.
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindFunc:      "function",
	KindDate:      "date",
	KindRegexp:    "regexp",
	KindArray:     "array",
	KindObject:    "object",
}

// String returns the lower-case kind name, e.g. "number".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsMissing reports whether k is [KindUndefined] or [KindNull].
func (k Kind) IsMissing() bool { return k == KindUndefined || k == KindNull }

// IsPrimitive reports whether k is a boolean, number or string.
func (k Kind) IsPrimitive() bool {
	return k == KindBool || k == KindNumber || k == KindString
}

// TypeOf groups kinds the way a `typeof` check does: null, dates, regular
// expressions, arrays and objects all report "object".
func (k Kind) TypeOf() string {
	switch k {
	case KindUndefined, KindBool, KindNumber, KindString, KindFunc:
		return k.String()
	default:
		return "object"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the value reported for a property that does not exist.
// It is distinct from nil, which stands for an explicit null.
var Undefined any = undefined{}

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
)

// KindOf classifies v.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	if _, ok := v.(undefined); ok {
		return KindUndefined
	}
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return KindNull
	}
	return kindOfValue(rv)
}

func kindOfValue(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunc
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Struct:
		switch rv.Type() {
		case timeType:
			return KindDate
		case regexpType:
			return KindRegexp
		}
		return KindObject
	default:
		return KindObject
	}
}

// indirect follows pointers and interfaces. It returns false when it meets
// a nil one.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
