package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeLootSplit(t *testing.T) {
	cases := []struct {
		name  string
		coins []int
		want  int
	}{
		{"small", []int{1, 2, 4}, 1},
		{"six coins", []int{3, 1, 4, 2, 2, 1}, 1},
		{"perfect", []int{2, 2, 2, 2}, 0},
		{"classic", []int{1, 5, 11, 5}, 0},
		{"single", []int{100}, 100},
		{"zeros", []int{0, 0, 0, 0}, 0},
		{"large values", []int{1000, 500, 300, 200}, 0},
		{"odd count", []int{10, 10, 10, 10, 10}, 10},
		{"empty", nil, 0},
		{"negative", []int{-1, 2, 3}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OptimizeLootSplit(tc.coins))
		})
	}
}

func TestOptimizeLootSplitFiftyCoins(t *testing.T) {
	coins := make([]int, 0, 50)
	for i := 1; i <= 50; i++ {
		coins = append(coins, i)
	}
	assert.Equal(t, 1, OptimizeLootSplit(coins))
}

func TestMaximizeCarryValue(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		items    []Item
		want     int
	}{
		{"all fit", 10, []Item{{1, 10}, {2, 20}, {3, 30}}, 60},
		{"choose pair", 5, []Item{{4, 10}, {3, 9}, {2, 5}}, 14},
		{"zero capacity", 0, []Item{{1, 100}, {2, 200}}, 0},
		{"no items", 100, nil, 0},
		{"single fits", 10, []Item{{5, 50}}, 50},
		{"single too heavy", 10, []Item{{15, 100}}, 0},
		{"all too heavy", 10, []Item{{20, 100}, {25, 200}, {30, 300}}, 0},
		{"multiple optima", 5, []Item{{2, 3}, {3, 4}, {4, 5}, {5, 6}}, 7},
		{"light beats heavy", 10, []Item{{1, 10}, {10, 1}}, 10},
		{"duplicates", 6, []Item{{2, 5}, {2, 5}, {2, 5}}, 15},
		{"negative capacity", -3, []Item{{1, 1}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaximizeCarryValue(tc.capacity, tc.items))
		})
	}
}

func TestMaximizeCarryValueManyItems(t *testing.T) {
	var items []Item
	for i := 1; i <= 100; i++ {
		items = append(items, Item{Weight: i%10 + 1, Value: i * 10})
	}
	assert.Greater(t, MaximizeCarryValue(50, items), 0)
}

func TestCountStringPossibilities(t *testing.T) {
	cases := map[string]int64{
		"uu":     2,
		"nn":     2,
		"uuuu":   5,
		"nnnn":   5,
		"":       1,
		"a":      1,
		"abc":    1,
		"xyzxyz": 1,
		"uun":    2,
		"nuu":    2,
		"uunn":   4,
		"auub":   2,
		"uunu":   2,
		"ununun": 1,
		"uwu":    0,
		"mom":    0,
	}
	for in, want := range cases {
		assert.Equal(t, want, CountStringPossibilities(in), "input %q", in)
	}

	assert.Equal(t, int64(89), CountStringPossibilities(strings.Repeat("u", 10)))
	assert.Equal(t, int64(89), CountStringPossibilities(strings.Repeat("n", 10)))
	assert.Equal(t, int64(1), CountStringPossibilities(strings.Repeat("a", 100)))
	assert.Greater(t, CountStringPossibilities("uunnuunnuunnuunnuunnuunnuunnuu"), int64(0))
}

// Fib(1001) overflows int64, so the result must come back reduced.
func TestCountStringPossibilitiesIsReduced(t *testing.T) {
	got := CountStringPossibilities(strings.Repeat("u", 1000))
	assert.GreaterOrEqual(t, got, int64(0))
	assert.Less(t, got, int64(DecodeModulus))
}
