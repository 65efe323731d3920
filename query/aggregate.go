package query

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-linq/value"
)

// Number is the set of element types the typed aggregates accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Dynamic aggregates
//
// Max, Min and Average work on any sequence: the optional selector picks
// the value to aggregate, otherwise the item itself is used. Every value
// must be a number. Max and Min pass over NaN values and only report NaN
// when every value is NaN; Average lets NaN through.
// ─────────────────────────────────────────────────────────────────────────────

// Max returns the largest value.
// Returns [ErrEmptySequence] for an empty sequence and
// [ErrInconsistentType] when a value is not a number.
func (s *Sequence[T]) Max(sels ...func(T) any) (float64, error) {
	return s.fold("max", sels, true, func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	})
}

// Min returns the smallest value.
// Returns [ErrEmptySequence] for an empty sequence and
// [ErrInconsistentType] when a value is not a number.
func (s *Sequence[T]) Min(sels ...func(T) any) (float64, error) {
	return s.fold("min", sels, true, func(acc, v float64) float64 {
		if v < acc {
			return v
		}
		return acc
	})
}

// Average returns the arithmetic mean of the values.
// Returns [ErrEmptySequence] for an empty sequence and
// [ErrInconsistentType] when a value is not a number.
func (s *Sequence[T]) Average(sels ...func(T) any) (float64, error) {
	sum, err := s.fold("average", sels, false, func(acc, v float64) float64 { return acc + v })
	if err != nil {
		return 0, err
	}
	return sum / float64(len(s.items)), nil
}

// fold seeds the accumulator with the first value and folds the rest in.
// With skipNaN set, NaN values are left out of the fold.
func (s *Sequence[T]) fold(op string, sels []func(T) any, skipNaN bool, step func(acc, v float64) float64) (float64, error) {
	if !s.IsValid() {
		return 0, newOpError(op, "", ErrEmptySequence, "sequence contains no elements")
	}
	sel := func(item T) any { return item }
	if len(sels) > 0 && sels[0] != nil {
		sel = sels[0]
	}

	acc, seeded := math.NaN(), false
	for i, item := range s.items {
		raw := sel(item)
		v, ok := value.Float(raw)
		if !ok {
			return 0, newOpError(op, "selector", ErrInconsistentType,
				"can operate only on numbers: element %d is %s", i, value.KindOf(raw))
		}
		switch {
		case skipNaN && math.IsNaN(v):
		case !seeded:
			acc, seeded = v, true
		default:
			acc = step(acc, v)
		}
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values fn extracts. An empty sequence sums to 0.
//
//	total := query.Sum(orders, func(o Order) float64 { return o.Total })
func Sum[T any, N Number](s *Sequence[T], fn func(T) N) N {
	var total N
	for _, item := range s.items {
		total += fn(item)
	}
	return total
}

// MaxOf returns the largest value fn extracts, or [ErrEmptySequence].
// NaN values are passed over unless every value is NaN.
func MaxOf[T any, N Number](s *Sequence[T], fn func(T) N) (N, error) {
	return foldOf(s, "max", fn, func(acc, v N) bool { return v > acc })
}

// MinOf returns the smallest value fn extracts, or [ErrEmptySequence].
// NaN values are passed over unless every value is NaN.
func MinOf[T any, N Number](s *Sequence[T], fn func(T) N) (N, error) {
	return foldOf(s, "min", fn, func(acc, v N) bool { return v < acc })
}

// AverageOf returns the mean of the values fn extracts, or
// [ErrEmptySequence].
func AverageOf[T any, N Number](s *Sequence[T], fn func(T) N) (float64, error) {
	if err := checkFunc("average", "selector", fn); err != nil {
		return 0, err
	}
	if !s.IsValid() {
		return 0, newOpError("average", "", ErrEmptySequence, "sequence contains no elements")
	}
	var total float64
	for _, item := range s.items {
		total += float64(fn(item))
	}
	return total / float64(len(s.items)), nil
}

func foldOf[T any, N Number](s *Sequence[T], op string, fn func(T) N, better func(acc, v N) bool) (N, error) {
	var acc N
	if err := checkFunc(op, "selector", fn); err != nil {
		return acc, err
	}
	if !s.IsValid() {
		return acc, newOpError(op, "", ErrEmptySequence, "sequence contains no elements")
	}
	seeded := false
	for i, item := range s.items {
		v := fn(item)
		switch {
		case math.IsNaN(float64(v)):
			if i == 0 {
				acc = v
			}
		case !seeded || better(acc, v):
			acc, seeded = v, true
		}
	}
	return acc, nil
}
