package query

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sequence is an ordered, finite, fully materialised collection of T that
// the query operators run over.
//
// Filtering, projecting, slicing, grouping and joining return new
// sequences. Ordering and [Sequence.RemoveAt] work in place: they rearrange
// the receiver and return it, so callers that need the original order must
// [Sequence.Clone] first.
//
// # Creating a sequence
//
//	s := query.New(3, 1, 2)
//	s := query.From([]Order{...})
//	s := query.Empty[string]()
//
// # Chaining
//
//	top, err := query.New(5, 3, 8, 1).Order()
//	if err != nil { ... }
//	first3, err := top.Take(3)
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions: [Select], [InnerJoin],
// [LeftOuterJoin], [Sum] and friends.
//
// A Sequence is not safe for concurrent mutation.
type Sequence[T any] struct {
	items []T
	cfg   Config
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst, cfg: DefaultConfig()}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}, cfg: DefaultConfig()}
}

// derive wraps items in a new sequence carrying the config of parent.
func derive[T, U any](parent *Sequence[T], items []U) *Sequence[U] {
	return &Sequence[U]{items: items, cfg: parent.cfg}
}

// WithConfig returns a copy of s that carries cfg.
func (s *Sequence[T]) WithConfig(cfg Config) *Sequence[T] {
	out := s.Clone()
	out.cfg = cfg
	return out
}

// Config returns the settings s carries.
func (s *Sequence[T]) Config() Config { return s.cfg }

// Clone returns an independent copy of s.
func (s *Sequence[T]) Clone() *Sequence[T] {
	dst := make([]T, len(s.items))
	copy(dst, s.items)
	return derive(s, dst)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of items in the sequence.
func (s *Sequence[T]) Count() int { return len(s.items) }

// IsValid reports whether the sequence holds at least one item.
// Operators treat an invalid sequence as "nothing to do".
func (s *Sequence[T]) IsValid() bool { return s != nil && len(s.items) >= 1 }

// Get returns the item at index together with a presence flag.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// ToJSON serialises the items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// MarshalJSON implements [json.Marshaler] so sequences nested inside groups
// encode as plain arrays.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) { return s.ToJSON() }

// ToYAML serialises the items to a YAML sequence.
func (s *Sequence[T]) ToYAML() ([]byte, error) {
	return yaml.Marshal(s.items)
}

// MarshalYAML implements [yaml.Marshaler].
func (s *Sequence[T]) MarshalYAML() (any, error) { return s.items, nil }

// String returns a JSON representation of the sequence.
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place edits
// ─────────────────────────────────────────────────────────────────────────────

// Swap exchanges the items at i and j in place and returns s.
// Returns [ErrInvalidArgument] when either index is out of range.
func (s *Sequence[T]) Swap(i, j int) (*Sequence[T], error) {
	n := len(s.items)
	if i < 0 || j < 0 || i >= n || j >= n {
		return s, newOpError("swap", "", ErrInvalidArgument,
			"indexes %d and %d must be within a sequence of length %d", i, j, n)
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
	return s, nil
}

// RemoveAt removes the item at index in place and returns s.
// A negative index counts from the end; an out-of-range index is a no-op.
func (s *Sequence[T]) RemoveAt(index int) *Sequence[T] {
	if index < 0 {
		index += len(s.items)
	}
	if index < 0 || index >= len(s.items) {
		return s
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return s
}
