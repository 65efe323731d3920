// Package query provides composable in-memory query operators (filter,
// project, slice, order, group, join, aggregate) over a finite, already
// materialised sequence of values.
//
// # Overview
//
// The central type is [Sequence][T], a typed wrapper around a slice of T
// chosen explicitly by the caller:
//
//	people := query.From([]Person{...})
//	adults, err := people.Where(func(p Person) bool { return p.Age >= 18 })
//	sorted, err := adults.OrderBy(query.ByName[Person]("name"))
//	groups, err := sorted.GroupBy(query.ByFunc(func(p Person) any { return p.City }))
//
// Operators validate their function arguments before doing any work and
// report failures as errors wrapping one of the package sentinels
// ([ErrInvalidArgument], [ErrPredicateContract], [ErrInconsistentType],
// [ErrInvalidShape], [ErrEmptySequence]). A failure aborts the whole call.
//
// # Selectors
//
// Keys are extracted by a [Selector]: either a dot-notation property path
// ([ByName]) resolved against maps and structs, or a function ([ByFunc]).
// The selector is resolved once per call.
//
// # Ordering
//
// [Sequence.Order] and [Sequence.OrderBy] sort in place with a stable
// adjacent-swap sort. Strings compare by locale collation ([Config.Locale]),
// numbers numerically with NaN always moved towards the end, booleans as
// false < true. Items whose key is null or undefined are set aside and
// appended after the sorted items.
//
// # Grouping and joining
//
// [Sequence.GroupBy] compares keys structurally (see package value) and
// keeps groups in first-seen order. [InnerJoin] and [LeftOuterJoin] pair
// each left item with its first matching right item and either merge the
// pair into a [Record] or hand it to a projector.
//
// # Dynamic predicates
//
// Predicates are plain func(T) bool. A predicate whose result type is only
// known at run time can be adapted with [Loose]; a non-boolean result then
// fails the operator with [ErrPredicateContract] at the element that
// produced it.
//
// # Concurrency
//
// Operators run synchronously to completion and keep no state between
// calls. A Sequence must not be ordered from two goroutines at once.
package query
