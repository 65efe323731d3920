package query

import (
	"github.com/hasbyte1/go-linq/props"
	"github.com/hasbyte1/go-linq/value"
)

// Selector extracts a key from an element. It is either a property path
// ([ByName]) or a function ([ByFunc]); the zero Selector is neither and is
// rejected by every operator that takes one.
type Selector[T any] struct {
	path string
	fn   func(T) any
}

// ByName selects the property at the dot-notation path of each element.
// A property that does not exist selects [value.Undefined].
//
//	query.ByName[Order]("customer.country")
func ByName[T any](path string) Selector[T] {
	return Selector[T]{path: path}
}

// ByFunc selects the value fn returns for each element.
func ByFunc[T any](fn func(T) any) Selector[T] {
	return Selector[T]{fn: fn}
}

// String describes the selector for error messages.
func (s Selector[T]) String() string {
	switch {
	case s.fn != nil:
		return "func"
	case s.path != "":
		return s.path
	}
	return "<none>"
}

// resolve returns the key function once per operator call.
func (s Selector[T]) resolve(op string) (func(T) any, error) {
	if s.fn != nil {
		return s.fn, nil
	}
	if s.path != "" {
		path := s.path
		return func(item T) any {
			v, ok := props.Lookup(item, path)
			if !ok {
				return value.Undefined
			}
			return v
		}, nil
	}
	return nil, newOpError(op, "selector", ErrInvalidArgument,
		"must be a property name which exists in each element, or a function that returns the key")
}
