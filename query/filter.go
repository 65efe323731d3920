package query

// This file holds the single-pass operators: filtering, projection,
// element lookup, slicing and quantifiers. Each validates its function
// argument before touching the sequence.

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & projection
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a new sequence with the items for which fn returns true.
// An empty sequence is returned as is.
func (s *Sequence[T]) Where(fn func(T) bool) (out *Sequence[T], err error) {
	if err = checkFunc("where", "filter", fn); err != nil {
		return nil, err
	}
	if !s.IsValid() {
		return s, nil
	}
	defer recoverContract("where", "filter", &err)

	kept := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if fn(item) {
			kept = append(kept, item)
		}
	}
	return derive(s, kept), nil
}

// Select projects every item through fn into a new Sequence[U].
//
//	names, err := query.Select(users, func(u User) string { return u.Name })
func Select[T, U any](s *Sequence[T], fn func(T) U) (*Sequence[U], error) {
	if err := checkFunc("select", "selector", fn); err != nil {
		return nil, err
	}
	out := make([]U, len(s.items))
	for i, item := range s.items {
		out[i] = fn(item)
	}
	return derive(s, out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Element lookup
// ─────────────────────────────────────────────────────────────────────────────

// FirstOrDefault returns the first item, or the first item matching fns[0]
// when a non-nil predicate is given. found is false when there is no such
// item, in which case item is the zero value.
func (s *Sequence[T]) FirstOrDefault(fns ...func(T) bool) (item T, found bool, err error) {
	if len(fns) == 0 || fns[0] == nil {
		if s.IsValid() {
			return s.items[0], true, nil
		}
		return item, false, nil
	}
	defer recoverContract("firstOrDefault", "filter", &err)

	for _, it := range s.items {
		if fns[0](it) {
			return it, true, nil
		}
	}
	return item, false, nil
}

// LastOrDefault is [Sequence.FirstOrDefault] scanning from the end.
func (s *Sequence[T]) LastOrDefault(fns ...func(T) bool) (item T, found bool, err error) {
	if len(fns) == 0 || fns[0] == nil {
		if s.IsValid() {
			return s.items[len(s.items)-1], true, nil
		}
		return item, false, nil
	}
	defer recoverContract("lastOrDefault", "filter", &err)

	for i := len(s.items) - 1; i >= 0; i-- {
		if fns[0](s.items[i]) {
			return s.items[i], true, nil
		}
	}
	return item, false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n items.
// s itself is returned when it is empty or shorter than n; n < 1 is an
// [ErrInvalidArgument].
func (s *Sequence[T]) Take(n int) (*Sequence[T], error) {
	if !s.IsValid() || n > len(s.items) {
		return s, nil
	}
	if n < 1 {
		return nil, newOpError("take", "number", ErrInvalidArgument,
			"must be greater than 0, got %d", n)
	}
	out := make([]T, n)
	copy(out, s.items[:n])
	return derive(s, out), nil
}

// TakeWhile returns items from the start for as long as fn returns true.
func (s *Sequence[T]) TakeWhile(fn func(T) bool) (out *Sequence[T], err error) {
	if err = checkFunc("takeWhile", "filter", fn); err != nil {
		return nil, err
	}
	if !s.IsValid() {
		return s, nil
	}
	defer recoverContract("takeWhile", "filter", &err)

	kept := make([]T, 0)
	for _, item := range s.items {
		if !fn(item) {
			break
		}
		kept = append(kept, item)
	}
	return derive(s, kept), nil
}

// Skip bypasses the first n items and returns the rest.
// s itself is returned when it is empty; n < 1 is an [ErrInvalidArgument];
// n >= Count() yields an empty sequence.
func (s *Sequence[T]) Skip(n int) (*Sequence[T], error) {
	if !s.IsValid() {
		return s, nil
	}
	if n < 1 {
		return nil, newOpError("skip", "number", ErrInvalidArgument,
			"must be greater than 0, got %d", n)
	}
	if n >= len(s.items) {
		return derive(s, []T{}), nil
	}
	out := make([]T, len(s.items)-n)
	copy(out, s.items[n:])
	return derive(s, out), nil
}

// SkipWhile bypasses items while fn returns true and returns the rest.
// fn is not called again once it has returned false.
func (s *Sequence[T]) SkipWhile(fn func(T) bool) (out *Sequence[T], err error) {
	if err = checkFunc("skipWhile", "filter", fn); err != nil {
		return nil, err
	}
	if !s.IsValid() {
		return s, nil
	}
	defer recoverContract("skipWhile", "filter", &err)

	for i, item := range s.items {
		if !fn(item) {
			rest := make([]T, len(s.items)-i)
			copy(rest, s.items[i:])
			return derive(s, rest), nil
		}
	}
	return derive(s, []T{}), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether the sequence has any item, or any item matching
// fns[0] when a non-nil predicate is given. An empty sequence reports false
// without calling the predicate.
func (s *Sequence[T]) Any(fns ...func(T) bool) (found bool, err error) {
	if !s.IsValid() {
		return false, nil
	}
	if len(fns) == 0 || fns[0] == nil {
		return true, nil
	}
	defer recoverContract("any", "filter", &err)

	for _, item := range s.items {
		if fns[0](item) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every item satisfies fn.
//
// Unlike [Sequence.Any], All on an empty sequence is an error
// ([ErrEmptySequence]) rather than a vacuous true.
func (s *Sequence[T]) All(fn func(T) bool) (ok bool, err error) {
	if err = checkFunc("all", "filter", fn); err != nil {
		return false, err
	}
	if !s.IsValid() {
		return false, newOpError("all", "", ErrEmptySequence,
			"sequence must contain elements before using it")
	}
	defer recoverContract("all", "filter", &err)

	for _, item := range s.items {
		if !fn(item) {
			return false, nil
		}
	}
	return true, nil
}
