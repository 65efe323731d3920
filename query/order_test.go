package query_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-linq/query"
	"github.com/hasbyte1/go-linq/value"
)

type item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestOrderNumbers(t *testing.T) {
	s := query.New(3, 1, 2)
	got, err := s.Order()
	require.NoError(t, err)
	assert.Same(t, s, got, "Order sorts in place and returns the receiver")
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	_, err = s.OrderDesc()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, s.ToSlice())
}

func TestOrderIsIdempotent(t *testing.T) {
	s := query.New(5, 3, 8, 1, 3)
	_, err := s.Order()
	require.NoError(t, err)
	once := s.ToSlice()

	_, err = s.Order()
	require.NoError(t, err)
	assert.Equal(t, once, s.ToSlice())
	assert.Equal(t, []int{1, 3, 3, 5, 8}, once)
}

func TestOrderStrings(t *testing.T) {
	s := query.New("pear", "Apple", "banana", "apple")
	_, err := s.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Apple", "banana", "pear"}, s.ToSlice())
}

func TestOrderStringsWithLocale(t *testing.T) {
	words := []string{"ö", "z", "o"}

	root := query.From(words)
	_, err := root.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"o", "ö", "z"}, root.ToSlice())

	cfg := query.DefaultConfig()
	cfg.Locale = language.Swedish
	sv := query.From(words).WithConfig(cfg)
	_, err = sv.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"o", "z", "ö"}, sv.ToSlice())
}

func TestOrderBooleans(t *testing.T) {
	s := query.New(true, false, true)
	_, err := s.Order()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, s.ToSlice())
}

func TestOrderNaNGoesLast(t *testing.T) {
	nan := math.NaN()

	asc := query.New(2, nan, 1)
	_, err := asc.Order()
	require.NoError(t, err)
	got := asc.ToSlice()
	assert.Equal(t, []float64{1, 2}, got[:2])
	assert.True(t, math.IsNaN(got[2]))

	desc := query.New(nan, 1, 2)
	_, err = desc.OrderDesc()
	require.NoError(t, err)
	got = desc.ToSlice()
	assert.Equal(t, []float64{2, 1}, got[:2])
	assert.True(t, math.IsNaN(got[2]))
}

func TestOrderMixedTypesLeavesSequenceUntouched(t *testing.T) {
	s := query.New[any]("b", 1, "a")
	_, err := s.Order()
	require.ErrorIs(t, err, query.ErrInconsistentType)
	assert.Equal(t, []any{"b", 1, "a"}, s.ToSlice())
}

func TestOrderRequiresSelectorForObjects(t *testing.T) {
	s := query.New(map[string]any{"k": 1})
	_, err := s.Order()
	require.ErrorIs(t, err, query.ErrInvalidArgument)

	var opErr *query.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "orderBy", opErr.Op)
	assert.Equal(t, "selector", opErr.Arg)
}

func TestOrderEmpty(t *testing.T) {
	s := query.Empty[int]()
	got, err := s.Order()
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 0, got.Count())
}

func TestOrderByName(t *testing.T) {
	s := query.New(
		item{"c", 30},
		item{"a", 10},
		item{"b", 20},
	)
	_, err := s.OrderBy(query.ByName[item]("price"))
	require.NoError(t, err)
	assert.Equal(t, []item{{"a", 10}, {"b", 20}, {"c", 30}}, s.ToSlice())

	_, err = s.OrderByDesc(query.ByName[item]("name"))
	require.NoError(t, err)
	assert.Equal(t, []item{{"c", 30}, {"b", 20}, {"a", 10}}, s.ToSlice())
}

func TestOrderByIsStable(t *testing.T) {
	s := query.New(
		item{"first", 2},
		item{"second", 1},
		item{"third", 2},
		item{"fourth", 1},
	)
	_, err := s.OrderBy(query.ByFunc(func(i item) any { return i.Price }))
	require.NoError(t, err)

	names, err := query.Select(s, func(i item) string { return i.Name })
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, names.ToSlice())
}

func TestOrderByMovesMissingKeysLast(t *testing.T) {
	s := query.New(
		map[string]any{"k": 2},
		map[string]any{"k": nil},
		map[string]any{"other": true},
		map[string]any{"k": 1},
	)
	_, err := s.OrderBy(query.ByName[map[string]any]("k"))
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"k": 1},
		{"k": 2},
		{"k": nil},
		{"other": true},
	}, s.ToSlice())

	_, err = s.OrderByDesc(query.ByName[map[string]any]("k"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": 2}, s.ToSlice()[0])
	assert.Equal(t, map[string]any{"k": nil}, s.ToSlice()[2])
}

func TestOrderByAllKeysMissing(t *testing.T) {
	s := query.New(map[string]any{"a": 2}, map[string]any{"a": 1})
	_, err := s.OrderBy(query.ByName[map[string]any]("k"))
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"a": 2}, {"a": 1}}, s.ToSlice())
}

func TestOrderByDates(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := query.New(base.Add(2*time.Hour), base, base.Add(time.Hour))
	_, err := s.OrderBy(query.ByFunc(func(t time.Time) any { return t }))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}, s.ToSlice())
}

func TestOrderByInconsistentKeys(t *testing.T) {
	s := query.New(
		map[string]any{"k": 1},
		map[string]any{"k": "1"},
	)
	before := s.ToSlice()
	_, err := s.OrderBy(query.ByName[map[string]any]("k"))
	require.ErrorIs(t, err, query.ErrInconsistentType)
	assert.Contains(t, err.Error(), "key k")
	assert.Equal(t, before, s.ToSlice())
}

func TestOrderByUnorderableKey(t *testing.T) {
	s := query.New(map[string]any{"k": []int{1}})
	_, err := s.OrderBy(query.ByName[map[string]any]("k"))
	require.ErrorIs(t, err, query.ErrInconsistentType)
	assert.Contains(t, err.Error(), value.KindArray.String())
}

func TestOrderByZeroSelector(t *testing.T) {
	_, err := query.Empty[item]().OrderBy(query.Selector[item]{})
	require.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestOrderByCallsSelectorOncePerItem(t *testing.T) {
	calls := 0
	s := query.New(4, 3, 2, 1)
	_, err := s.OrderBy(query.ByFunc(func(n int) any {
		calls++
		return n
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestOrderLogs(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 4})

	cfg := query.DefaultConfig()
	cfg.Logger = logger
	s := query.New(2, 1).WithConfig(cfg)
	_, err := s.Order()
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "orderBy"), lines[0])
	assert.Contains(t, lines[0], `"msg"="sorted"`)
	assert.Contains(t, lines[0], `"sorted"=2`)
}
