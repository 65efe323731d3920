package query

import (
	"reflect"
	"strconv"

	"github.com/hasbyte1/go-linq/props"
)

// Record is the merged property bag a join emits when no projector is
// given.
type Record = props.Record

// ─────────────────────────────────────────────────────────────────────────────
// Inner join
// ─────────────────────────────────────────────────────────────────────────────

// InnerJoin pairs every item of left with the first item of right for
// which on returns true, and merges each pair into one [Record]. Left items
// without a match are dropped. At most one right item is used per left item.
//
// The merged record holds every property of the left item. A right-hand
// property whose name the left item also has is stored under the name
// suffixed with the smallest positive integer that the left item does not
// use: joining {id, name} with {id, total} yields {id, name, id1, total}.
// Left-hand properties are never overwritten.
//
// Both inputs must hold maps with string keys or structs; on must not be
// nil and right must not be a nil sequence. When either input is empty the
// result is empty and on is never called.
func InnerJoin[L, R any](left *Sequence[L], right Enumerable[R], on func(L, R) bool) (*Sequence[Record], error) {
	const op = "innerJoin"
	if err := validateJoin(op, left, right, on); err != nil {
		return nil, err
	}
	out := make([]Record, 0)
	err := runJoin(op, left, right, on, false, func(l L, r *R) error {
		rec, err := mergeMatched(op, l, *r)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return derive(left, out), nil
}

// InnerJoinWith is [InnerJoin] with each matched pair projected by project
// instead of merged.
func InnerJoinWith[L, R, U any](left *Sequence[L], right Enumerable[R], on func(L, R) bool, project func(L, R) U) (*Sequence[U], error) {
	const op = "innerJoin"
	if err := validateJoin(op, left, right, on); err != nil {
		return nil, err
	}
	if err := checkFunc(op, "selector", project); err != nil {
		return nil, err
	}
	out := make([]U, 0)
	err := runJoin(op, left, right, on, false, func(l L, r *R) error {
		out = append(out, project(l, *r))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return derive(left, out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Left outer join
// ─────────────────────────────────────────────────────────────────────────────

// LeftOuterJoin is [InnerJoin] keeping unmatched left items: each one is
// emitted as is, converted to a [Record] (a left item that already is a
// Record is emitted without copying).
//
// An empty right sequence therefore returns every left item unchanged, each
// one unmatched, where [InnerJoin] returns an empty result. An empty left
// sequence returns an empty result for both.
func LeftOuterJoin[L, R any](left *Sequence[L], right Enumerable[R], on func(L, R) bool) (*Sequence[Record], error) {
	const op = "leftOuterJoin"
	if err := validateJoin(op, left, right, on); err != nil {
		return nil, err
	}
	out := make([]Record, 0)
	err := runJoin(op, left, right, on, true, func(l L, r *R) error {
		if r == nil {
			rec, ok := props.ToRecord(l)
			if !ok {
				return newOpError(op, "", ErrInvalidShape,
					"left elements must be maps or structs to be joined without a projector, got %T", l)
			}
			out = append(out, rec)
			return nil
		}
		rec, err := mergeMatched(op, l, *r)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return derive(left, out), nil
}

// LeftOuterJoinWith is [LeftOuterJoin] with every left item projected by
// project; match is nil when no right item satisfied on.
//
//	rows, err := query.LeftOuterJoinWith(users, orders,
//	    func(u User, o Order) bool { return u.ID == o.UserID },
//	    func(u User, o *Order) Row {
//	        if o == nil {
//	            return Row{Name: u.Name}
//	        }
//	        return Row{Name: u.Name, Total: o.Total}
//	    })
func LeftOuterJoinWith[L, R, U any](left *Sequence[L], right Enumerable[R], on func(L, R) bool, project func(L, *R) U) (*Sequence[U], error) {
	const op = "leftOuterJoin"
	if err := validateJoin(op, left, right, on); err != nil {
		return nil, err
	}
	if err := checkFunc(op, "selector", project); err != nil {
		return nil, err
	}
	out := make([]U, 0)
	err := runJoin(op, left, right, on, true, func(l L, match *R) error {
		out = append(out, project(l, match))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return derive(left, out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Engine
// ─────────────────────────────────────────────────────────────────────────────

func validateJoin[L, R any](op string, left *Sequence[L], right Enumerable[R], on func(L, R) bool) error {
	if left == nil {
		return newOpError(op, "", ErrInvalidShape, "left sequence must not be nil")
	}
	if isNil(right) {
		return newOpError(op, "listToJoin", ErrInvalidShape, "must be a sequence, got nil")
	}
	return checkFunc(op, "condition", on)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// runJoin calls emit once per left item that found its first match, and,
// when outer is set, once with a nil match per left item that did not.
func runJoin[L, R any](op string, left *Sequence[L], right Enumerable[R], on func(L, R) bool, outer bool, emit func(L, *R) error) (err error) {
	if !left.IsValid() {
		return nil
	}
	rights := right.ToSlice()
	if len(rights) == 0 && !outer {
		return nil
	}
	log := left.cfg.logger(op)
	defer recoverContract(op, "condition", &err)

	matched := 0
	for i, l := range left.items {
		match := -1
		for j := range rights {
			if on(l, rights[j]) {
				match = j
				break
			}
		}
		if match < 0 {
			if outer {
				if err := emit(l, nil); err != nil {
					return err
				}
			}
			continue
		}
		log.V(5).Info("matched", "left", i, "right", match)
		matched++
		if err := emit(l, &rights[match]); err != nil {
			return err
		}
	}
	log.V(4).Info("joined", "left", len(left.items), "right", len(rights), "matched", matched)
	return nil
}

// mergeMatched copies every property of l into a new record, then every
// property of r, renaming the ones l also has.
func mergeMatched(op string, l, r any) (Record, error) {
	leftKeys, okL := props.Keys(l)
	rightKeys, okR := props.Keys(r)
	if !okL || !okR {
		return nil, newOpError(op, "", ErrInvalidShape,
			"elements must be maps or structs to be joined without a projector, got %T and %T", l, r)
	}

	out := make(Record, len(leftKeys)+len(rightKeys))
	taken := make(map[string]struct{}, len(leftKeys))
	for _, k := range leftKeys {
		out[k], _ = props.Field(l, k)
		taken[k] = struct{}{}
	}
	for _, k := range rightKeys {
		v, _ := props.Field(r, k)
		if _, collides := taken[k]; collides {
			k = suffixed(k, taken)
		}
		out[k] = v
	}
	return out, nil
}

// suffixed returns key followed by the smallest positive integer that does
// not name a property in taken.
func suffixed(key string, taken map[string]struct{}) string {
	for n := 1; ; n++ {
		candidate := key + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
