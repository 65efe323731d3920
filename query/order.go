package query

import (
	"golang.org/x/text/collate"

	"github.com/hasbyte1/go-linq/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Value ordering
// ─────────────────────────────────────────────────────────────────────────────

// orderer decides, for one pair of adjacent keys, whether they must swap.
type orderer struct {
	coll *collate.Collator
	desc bool
}

// outOfOrder reports whether first, currently placed before second, must
// move after it. Both keys are already known to share one orderable kind.
//
// A NaN first key always swaps with a non-NaN second key, whatever the
// direction, so NaN ends up last both ascending and descending.
func (o *orderer) outOfOrder(first, second any) bool {
	var c int
	switch value.KindOf(first) {
	case value.KindString:
		a, _ := value.Str(first)
		b, _ := value.Str(second)
		c = o.coll.CompareString(a, b)
	case value.KindNumber:
		firstNaN, secondNaN := value.IsNaN(first), value.IsNaN(second)
		if firstNaN && !secondNaN {
			return true
		}
		if firstNaN || secondNaN {
			return false
		}
		c = value.CompareNumbers(first, second)
	case value.KindBool:
		a, _ := value.Bool(first)
		b, _ := value.Bool(second)
		c = ordinal(a) - ordinal(b)
	case value.KindDate:
		a, _ := value.Time(first)
		b, _ := value.Time(second)
		c = a.Compare(b)
	default:
		return false
	}
	if o.desc {
		return c < 0
	}
	return c > 0
}

func ordinal(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Order sorts a sequence of booleans, numbers or strings by value, in
// place, and returns s. Equal items keep their relative order.
//
// Every item must be of the kind of the first item, otherwise
// [ErrInconsistentType] is returned and s is left untouched. A sequence
// whose first item is not a boolean, number or string needs a key: use
// [Sequence.OrderBy].
func (s *Sequence[T]) Order() (*Sequence[T], error) {
	return s.orderNatural("orderBy", false)
}

// OrderDesc is [Sequence.Order] in descending order.
func (s *Sequence[T]) OrderDesc() (*Sequence[T], error) {
	return s.orderNatural("orderByDesc", true)
}

// OrderBy sorts s in place by the key sel selects from every item, and
// returns s. Equal keys keep their relative order.
//
// Items whose key is null or undefined are not compared: they are moved,
// in their original relative order, after the sorted items. The remaining
// keys must all be of one kind among boolean, number, string and date,
// otherwise [ErrInconsistentType] is returned and s is left untouched.
//
//	byPrice, err := items.OrderBy(query.ByName[Item]("price"))
func (s *Sequence[T]) OrderBy(sel Selector[T]) (*Sequence[T], error) {
	return s.orderByKey("orderBy", sel, false)
}

// OrderByDesc is [Sequence.OrderBy] in descending order.
func (s *Sequence[T]) OrderByDesc(sel Selector[T]) (*Sequence[T], error) {
	return s.orderByKey("orderByDesc", sel, true)
}

func (s *Sequence[T]) orderNatural(op string, desc bool) (*Sequence[T], error) {
	if !s.IsValid() {
		return s, nil
	}
	if !value.KindOf(s.items[0]).IsPrimitive() {
		return nil, newOpError(op, "selector", ErrInvalidArgument,
			"is required when elements are not boolean, number or string, got %s",
			value.KindOf(s.items[0]))
	}
	identity := func(item T) any { return item }
	return s.sortInPlace(op, "", identity, desc)
}

func (s *Sequence[T]) orderByKey(op string, sel Selector[T], desc bool) (*Sequence[T], error) {
	keyOf, err := sel.resolve(op)
	if err != nil {
		return nil, err
	}
	if !s.IsValid() {
		return s, nil
	}
	return s.sortInPlace(op, "key "+sel.String(), keyOf, desc)
}

type sortEntry[T any] struct {
	key  any
	item T
}

// sortInPlace partitions s into sortable and excluded items, checks that
// every sortable key has the kind of the first one, bubble-sorts the
// sortable partition and writes sortable followed by excluded back into s.
// Nothing is written when a check fails.
//
// label names the key in error messages; it is empty when items are
// ordered by their own value.
func (s *Sequence[T]) sortInPlace(op, label string, keyOf func(T) any, desc bool) (*Sequence[T], error) {
	structured := label != ""
	log := s.cfg.logger(op)

	sortable := make([]sortEntry[T], 0, len(s.items))
	var excluded []T
	var expected value.Kind
	for i, item := range s.items {
		key := keyOf(item)
		kind := value.KindOf(key)
		if structured && kind.IsMissing() {
			excluded = append(excluded, item)
			continue
		}
		if len(sortable) == 0 {
			expected = kind
		}
		switch {
		case structured && !orderable(kind):
			return nil, newOpError(op, "selector", ErrInconsistentType,
				"%s must be a boolean, number, string or date, null or undefined: element %d has %s",
				label, i, kind)
		case structured && kind != expected:
			return nil, newOpError(op, "selector", ErrInconsistentType,
				"all elements must have %s of the same type, null or undefined: element %d has %s, expected %s",
				label, i, kind, expected)
		case !structured && kind != expected:
			return nil, newOpError(op, "", ErrInconsistentType,
				"all elements must be of the same type: element %d is %s, expected %s", i, kind, expected)
		}
		sortable = append(sortable, sortEntry[T]{key: key, item: item})
	}

	o := &orderer{coll: s.cfg.collator(), desc: desc}
	passes := bubble(sortable, o)

	for i, e := range sortable {
		s.items[i] = e.item
	}
	copy(s.items[len(sortable):], excluded)

	log.V(4).Info("sorted", "kind", expected.String(), "sorted", len(sortable),
		"excluded", len(excluded), "passes", passes)
	return s, nil
}

func orderable(k value.Kind) bool {
	return k.IsPrimitive() || k == value.KindDate
}

// bubble orders entries by repeated adjacent passes, restarting from the
// front after any pass that swapped, until a pass makes no change. Only
// strictly out-of-order neighbours swap, which keeps the sort stable.
// It returns the number of passes made.
func bubble[T any](entries []sortEntry[T], o *orderer) int {
	passes := 1
	changed := false
	for c := 0; c < len(entries); c++ {
		if c == len(entries)-1 {
			if !changed {
				break
			}
			c = -1
			changed = false
			passes++
			continue
		}
		if o.outOfOrder(entries[c].key, entries[c+1].key) {
			entries[c], entries[c+1] = entries[c+1], entries[c]
			changed = true
		}
	}
	return passes
}
