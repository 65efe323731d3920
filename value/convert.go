package value

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Float returns the numeric value of v as a float64.
// ok is false when v is not of [KindNumber].
func Float(v any) (f float64, ok bool) {
	rv, valid := indirect(reflect.ValueOf(v))
	if !valid {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v any) bool {
	f, ok := Float(v)
	return ok && math.IsNaN(f)
}

// CompareNumbers orders two numbers. Integers of the same signedness are
// compared exactly; every other combination goes through float64.
// NaN compares equal to everything, so callers must handle it first.
func CompareNumbers(a, b any) int {
	ra, _ := indirect(reflect.ValueOf(a))
	rb, _ := indirect(reflect.ValueOf(b))
	switch {
	case isSigned(ra) && isSigned(rb):
		return cmp3(ra.Int() < rb.Int(), ra.Int() > rb.Int())
	case isUnsigned(ra) && isUnsigned(rb):
		return cmp3(ra.Uint() < rb.Uint(), ra.Uint() > rb.Uint())
	}
	fa, _ := Float(a)
	fb, _ := Float(b)
	return cmp3(fa < fb, fa > fb)
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// Bool returns the value of a boolean v.
func Bool(v any) (b bool, ok bool) {
	rv, valid := indirect(reflect.ValueOf(v))
	if !valid || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// Str returns the value of a string v, including named string types.
func Str(v any) (s string, ok bool) {
	rv, valid := indirect(reflect.ValueOf(v))
	if !valid || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// Time returns the value of a date v.
func Time(v any) (t time.Time, ok bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x != nil {
			return *x, true
		}
	}
	return time.Time{}, false
}

// Render returns the canonical string rendering of v.
//
// Numbers render without a trailing ".0" so that 1 and 1.0 both render "1";
// dates render as RFC 3339 in UTC so two instants compare by value; regular
// expressions render as "/pattern/".
func Render(v any) string {
	switch KindOf(v) {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		b, _ := Bool(v)
		return strconv.FormatBool(b)
	case KindNumber:
		return renderNumber(v)
	case KindString:
		s, _ := Str(v)
		return s
	case KindFunc:
		return fmt.Sprintf("func@%#x", reflect.ValueOf(v).Pointer())
	case KindDate:
		t, ok := Time(v)
		if !ok {
			return fmt.Sprint(v)
		}
		return t.UTC().Format(time.RFC3339Nano)
	case KindRegexp:
		switch re := v.(type) {
		case *regexp.Regexp:
			return "/" + re.String() + "/"
		case regexp.Regexp:
			return "/" + re.String() + "/"
		}
	}
	return fmt.Sprint(v)
}

func renderNumber(v any) string {
	rv, _ := indirect(reflect.ValueOf(v))
	switch {
	case isSigned(rv):
		return strconv.FormatInt(rv.Int(), 10)
	case isUnsigned(rv):
		return strconv.FormatUint(rv.Uint(), 10)
	}
	f, bits := rv.Float(), rv.Type().Bits()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	// 1e-07 → 1e-7, 1e+21 stays.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bits), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
