package query

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the query operators.
//
// Every operator failure is an [*OpError] naming the operator and the
// offending argument; use [errors.Is] against these sentinels to classify it:
//
//	_, err := seq.OrderBy(query.ByName[Item]("price"))
//	if errors.Is(err, query.ErrInconsistentType) {
//	    // price is a number on some items and a string on others
//	}
var (
	// ErrInvalidArgument is returned when a required function argument is
	// missing, or a selector or count argument is malformed.
	//
	// errors.Is(err, ErrInvalidArgument) also holds for
	// [ErrPredicateContract] and [ErrInvalidShape] failures.
	ErrInvalidArgument = errors.New("query: invalid argument")

	// ErrPredicateContract is returned when a predicate adapted with [Loose]
	// or [LooseOn] returns something other than a boolean.
	ErrPredicateContract = errors.New("query: predicate did not return a boolean")

	// ErrInconsistentType is returned when the values compared within one
	// ordering pass, or fed to a numeric aggregate, are not of one
	// comparable type.
	ErrInconsistentType = errors.New("query: inconsistent element types")

	// ErrInvalidShape is returned when a grouping key is an array, or a
	// join input is not a sequence of property bags.
	ErrInvalidShape = errors.New("query: invalid shape")

	// ErrEmptySequence is returned by [Sequence.All] and the aggregates when
	// the sequence contains no elements.
	ErrEmptySequence = errors.New("query: sequence contains no elements")
)

// OpError describes a failed operator call.
type OpError struct {
	// Op is the operator name, e.g. "orderBy".
	Op string
	// Arg is the offending argument, or "" when the failure is about the
	// sequence itself.
	Arg string
	// Err is one of the package sentinels.
	Err error
	// Msg is a human-readable detail.
	Msg string
}

func newOpError(op, arg string, kind error, format string, args ...any) *OpError {
	return &OpError{Op: op, Arg: arg, Err: kind, Msg: fmt.Sprintf(format, args...)}
}

// Error renders "query: [op function] [arg parameter] msg".
func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("query: [")
	b.WriteString(e.Op)
	b.WriteString(" function]")
	if e.Arg != "" {
		b.WriteString(" [")
		b.WriteString(e.Arg)
		b.WriteString(" parameter]")
	}
	b.WriteString(" ")
	b.WriteString(e.Msg)
	return b.String()
}

// Unwrap returns the sentinel.
func (e *OpError) Unwrap() error { return e.Err }

// Is lets predicate-contract and shape failures also match
// [ErrInvalidArgument].
func (e *OpError) Is(target error) bool {
	return target == ErrInvalidArgument &&
		(e.Err == ErrPredicateContract || e.Err == ErrInvalidShape)
}
