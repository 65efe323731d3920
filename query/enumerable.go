package query

// Enumerable is the read-only surface a join needs from its right-hand
// input. [*Sequence][T] satisfies it.
//
// Accept Enumerable in your own functions so that callers can pass
// alternative implementations without depending on *Sequence.
type Enumerable[T any] interface {
	// ToSlice returns a copy of every item as a plain Go slice.
	ToSlice() []T

	// Count returns the number of items.
	Count() int

	// IsValid reports whether the collection holds at least one item.
	IsValid() bool
}

var _ Enumerable[int] = (*Sequence[int])(nil)
