// Package value gives Go values the dynamic view the query operators need:
// a kind for every value, a canonical string rendering, and the two
// equality relations used for grouping keys.
//
// # Kinds
//
// [KindOf] classifies any Go value. All integer and float kinds are
// [KindNumber]; nil is [KindNull]; the [Undefined] sentinel stands for a
// property that does not exist. time.Time is a date and *regexp.Regexp a
// regular expression.
//
// # Equality
//
// [Equal] is the structural comparison used to decide whether two grouping
// keys name the same group. It recurses into arrays but compares object
// properties with [StrictEqual] only:
//
//	value.Equal([]any{1, "a"}, []int{1})                          // false
//	value.Equal(map[string]any{"id": 1}, map[string]any{"id": 1.0}) // true
//	value.Equal(1, "1")                                            // false
package value
