package kvindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Index {
	t.Helper()
	x, err := OpenMem()
	require.NoError(t, err)
	t.Cleanup(func() { _ = x.Close() })
	return x
}

func TestScoreDescOrdering(t *testing.T) {
	x := openTest(t)
	require.NoError(t, x.Put(1, ScoreDescKey(10, 1)))
	require.NoError(t, x.Put(2, ScoreDescKey(30, 2)))
	require.NoError(t, x.Put(3, ScoreDescKey(30, 3)))
	require.NoError(t, x.Put(4, ScoreDescKey(-5, 4)))
	require.NoError(t, x.Put(5, ScoreDescKey(math.MaxInt32, 5)))

	ids, err := x.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 2, 3, 1, 4}, ids)
}

func TestPriceAscOrdering(t *testing.T) {
	x := openTest(t)
	require.NoError(t, x.Put(9, PriceAscKey(100, 9)))
	require.NoError(t, x.Put(-3, PriceAscKey(100, -3)))
	require.NoError(t, x.Put(4, PriceAscKey(math.MinInt32, 4)))
	require.NoError(t, x.Put(1, PriceAscKey(50, 1)))

	ids, err := x.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 1, -3, 9}, ids)
}

func TestPutReplacesAndDelete(t *testing.T) {
	x := openTest(t)
	require.NoError(t, x.Put(1, PriceAscKey(10, 1)))
	require.NoError(t, x.Put(2, PriceAscKey(20, 2)))
	require.NoError(t, x.Put(1, PriceAscKey(30, 1)))
	assert.Equal(t, 2, x.Len())

	ids, err := x.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 1}, ids)

	require.NoError(t, x.Delete(2))
	require.NoError(t, x.Delete(77))
	ids, err = x.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, ids)
}
