package query

import (
	"github.com/hasbyte1/go-linq/value"
)

// Group is one bucket produced by [Sequence.GroupBy]: a distinct key and
// every item that selected it, in encounter order.
type Group[T any] struct {
	Key   any          `json:"key" yaml:"key"`
	Value *Sequence[T] `json:"value" yaml:"value"`
}

// GroupBy buckets the items of s by the key sel selects.
//
// Keys are compared with [value.Equal], so 1 and 1.0 share a group while
// 1 and "1" do not, and two maps with the same primitive properties share
// a group. Groups are returned in the order their key was first seen.
//
// A key that is an array fails with [ErrInvalidShape].
//
//	groups, err := orders.GroupBy(query.ByName[Order]("status"))
//	for _, g := range groups {
//	    fmt.Println(g.Key, g.Value.Count())
//	}
func (s *Sequence[T]) GroupBy(sel Selector[T]) ([]Group[T], error) {
	keyOf, err := sel.resolve("groupBy")
	if err != nil {
		return nil, err
	}
	log := s.cfg.logger("groupBy")

	groups := make([]Group[T], 0)
	for i, item := range s.items {
		key := keyOf(item)
		if value.KindOf(key) == value.KindArray {
			return nil, newOpError("groupBy", "selector", ErrInvalidShape,
				"key value can't be an array (element %d)", i)
		}

		found := false
		for j := range groups {
			if value.Equal(groups[j].Key, key) {
				groups[j].Value.items = append(groups[j].Value.items, item)
				found = true
				break
			}
		}
		if !found {
			log.V(5).Info("new group", "key", value.Render(key), "element", i)
			groups = append(groups, Group[T]{Key: key, Value: derive(s, []T{item})})
		}
	}

	log.V(4).Info("grouped", "elements", len(s.items), "groups", len(groups))
	return groups, nil
}
