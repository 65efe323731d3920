package query

import (
	"fmt"
	"reflect"
)

// contractViolation is panicked by the adapters returned from Loose and
// LooseOn when the wrapped function yields a non-boolean. The operator that
// invoked the adapter recovers it into an ErrPredicateContract.
type contractViolation struct {
	got any
}

// Loose adapts a dynamically typed predicate for use with the operators.
//
// Every invocation is checked: when fn returns something other than a bool
// for some element, the operator evaluating it stops at that element and
// returns [ErrPredicateContract]. Elements already processed are not
// revisited.
//
//	isAdult := query.Loose(func(p map[string]any) any { return p["age"].(int) >= 18 })
//	adults, err := people.Where(isAdult)
func Loose[T any](fn func(T) any) func(T) bool {
	if fn == nil {
		return nil
	}
	return func(item T) bool {
		return mustBool(fn(item))
	}
}

// LooseOn is [Loose] for two-argument join conditions.
func LooseOn[L, R any](fn func(L, R) any) func(L, R) bool {
	if fn == nil {
		return nil
	}
	return func(l L, r R) bool {
		return mustBool(fn(l, r))
	}
}

func mustBool(v any) bool {
	b, ok := v.(bool)
	if !ok {
		panic(contractViolation{got: v})
	}
	return b
}

// checkFunc fails with ErrInvalidArgument when fn is nil.
func checkFunc(op, arg string, fn any) error {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || (rv.Kind() == reflect.Func && rv.IsNil()) {
		return newOpError(op, arg, ErrInvalidArgument, "must be a function, got nil")
	}
	if rv.Kind() != reflect.Func {
		return newOpError(op, arg, ErrInvalidArgument, "must be a function, got %T", fn)
	}
	return nil
}

// recoverContract turns a contractViolation raised while op was running
// into an ErrPredicateContract stored in *err. Other panics propagate.
// It must be deferred directly.
func recoverContract(op, arg string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	v, ok := r.(contractViolation)
	if !ok {
		panic(r)
	}
	*err = newOpError(op, arg, ErrPredicateContract,
		"must be a function that returns boolean, got %s", describe(v.got))
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T(%v)", v, v)
}
