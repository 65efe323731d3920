package value_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-linq/value"
)

type point struct {
	X, Y int
}

type label struct {
	Name string
}

type handle struct {
	id int
}

type tagged struct {
	Name  string
	cache []int
	Note  string `json:"-"`
}

func TestEqual(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	shared := map[string]any{"n": 1}
	sharedSlice := []int{1, 2}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"int and float render alike", 1, 1.0, true},
		{"int and string", 1, "1", false},
		{"strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"bools", true, true, true},
		{"bool and number", true, 1, false},
		{"NaN renders alike", math.NaN(), math.NaN(), true},
		{"undefined", value.Undefined, value.Undefined, true},
		{"undefined and null", value.Undefined, nil, false},
		{"nulls", nil, nil, true},
		{"null and map", nil, map[string]any{}, false},
		{"map and null", map[string]any{}, nil, false},
		{"same instant", instant, instant.In(time.FixedZone("X", 3600)), true},
		{"date pointer and value", &instant, instant, true},
		{"different instants", instant, instant.Add(time.Second), false},
		{"date and map", instant, map[string]any{}, false},
		{"same pattern", regexp.MustCompile("a+"), regexp.MustCompile("a+"), true},
		{"different patterns", regexp.MustCompile("a+"), regexp.MustCompile("b+"), false},
		{"arrays", []any{1, "a"}, []any{1.0, "a"}, true},
		{"array element types", []int{1, 2}, []any{1, 2}, true},
		{"array lengths", []int{1}, []int{1, 2}, false},
		{"nested arrays recurse", []any{[]int{1}}, []any{[]int{1}}, true},
		{"array and map", []int{}, map[string]any{}, false},
		{"maps with equal primitives", map[string]any{"a": 1, "b": "x"}, map[string]any{"b": "x", "a": 1}, true},
		{"maps with int and float", map[string]any{"a": 1}, map[string]any{"a": 1.0}, true},
		{"maps with different sizes", map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}, false},
		{"maps with different keys", map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{"maps with same nested reference", map[string]any{"n": shared}, map[string]any{"n": shared}, true},
		{"maps are shallow", map[string]any{"n": map[string]any{"n": 1}}, map[string]any{"n": map[string]any{"n": 1}}, false},
		{"map slices by reference", map[string]any{"s": sharedSlice}, map[string]any{"s": sharedSlice}, true},
		{"map slices by value", map[string]any{"s": []int{1}}, map[string]any{"s": []int{1}}, false},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"struct pointer and value", &point{1, 2}, point{1, 2}, true},
		{"different structs", point{1, 2}, point{2, 1}, false},
		{"different struct types", label{"a"}, map[string]any{"Name": "a"}, false},
		{"map key types", map[string]any{"a": 1}, map[string]int{"a": 1}, false},
		{"NaN properties", map[string]any{"n": math.NaN()}, map[string]any{"n": math.NaN()}, false},
		{"int-keyed maps", map[int]string{1: "a"}, map[int]string{1: "a"}, true},
		{"int-keyed maps with different keys", map[int]string{1: "a"}, map[int]string{2: "a"}, false},
		{"int-keyed maps with different values", map[int]string{1: "a"}, map[int]string{1: "b"}, false},
		{"int-keyed maps with different sizes", map[int]string{1: "a"}, map[int]string{1: "a", 2: "b"}, false},
		{"unexported fields", handle{1}, handle{1}, true},
		{"different unexported fields", handle{1}, handle{2}, false},
		{"same hidden slice", tagged{"a", sharedSlice, "x"}, tagged{"a", sharedSlice, "x"}, true},
		{"different hidden slices", tagged{"a", []int{1}, "x"}, tagged{"a", []int{1}, "x"}, false},
		{"different fields tagged out", tagged{"a", nil, "x"}, tagged{"a", nil, "y"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.Equal(tc.a, tc.b))
		})
	}
}

func TestEqualFunctions(t *testing.T) {
	f := func() {}
	assert.True(t, value.Equal(f, f))
	assert.False(t, value.Equal(f, "func"))
}

func TestEqualArrays(t *testing.T) {
	eq, err := value.EqualArrays([]int{1, 2}, [2]float64{1, 2})
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = value.EqualArrays([]int{1, 2}, []int{2, 1})
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = value.EqualArrays([]int{1}, map[string]any{})
	assert.ErrorIs(t, err, value.ErrNotArray)

	_, err = value.EqualArrays("ab", []string{"a", "b"})
	assert.ErrorIs(t, err, value.ErrNotArray)
}

func TestStrictEqual(t *testing.T) {
	m := map[string]any{}
	p := &point{1, 2}
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"numbers", 2, 2.0, true},
		{"NaN", math.NaN(), math.NaN(), false},
		{"large ints exactly", int64(1<<62 + 1), int64(1 << 62), false},
		{"strings", "x", "x", true},
		{"same map", m, m, true},
		{"equal maps", map[string]any{}, map[string]any{}, false},
		{"same pointer", p, p, true},
		{"equal pointers", p, &point{1, 2}, false},
		{"struct values", point{1, 2}, point{1, 2}, true},
		{"undefined and nil", value.Undefined, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, value.StrictEqual(tc.a, tc.b))
		})
	}
}
