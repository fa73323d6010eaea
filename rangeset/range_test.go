package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SortsMergesAndDropsEmpty(t *testing.T) {
	in := []Range[uint32]{
		{Lo: 10, Hi: 20},
		{Lo: 0, Hi: 5},
		{Lo: 5, Hi: 10},  // touches [0,5)
		{Lo: 25, Hi: 25}, // empty, dropped
		{Lo: 30, Hi: 40},
	}
	out := Normalize(in)
	require.Len(t, out, 2)
	assert.Equal(t, Range[uint32]{Lo: 0, Hi: 20}, out[0])
	assert.Equal(t, Range[uint32]{Lo: 30, Hi: 40}, out[1])
	assert.True(t, IsNormalized(out))
}

func TestNormalize_Idempotent(t *testing.T) {
	in := []Range[uint32]{{Lo: 0, Hi: 3}, {Lo: 7, Hi: 9}}
	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestContainsValue(t *testing.T) {
	rs := []Range[uint32]{{Lo: 0, Hi: 5}, {Lo: 10, Hi: 20}}
	assert.True(t, ContainsValue(rs, 0))
	assert.True(t, ContainsValue(rs, 4))
	assert.False(t, ContainsValue(rs, 5))
	assert.True(t, ContainsValue(rs, 19))
	assert.False(t, ContainsValue(rs, 20))
}

func TestIntersectsAndContains(t *testing.T) {
	rs := []Range[uint32]{{Lo: 0, Hi: 5}, {Lo: 10, Hi: 20}}
	assert.True(t, Intersects(rs, Range[uint32]{Lo: 3, Hi: 12}))
	assert.False(t, Intersects(rs, Range[uint32]{Lo: 5, Hi: 10}))
	assert.True(t, Contains(rs, Range[uint32]{Lo: 11, Hi: 15}))
	assert.False(t, Contains(rs, Range[uint32]{Lo: 4, Hi: 11}))
}

func TestTotalLen(t *testing.T) {
	rs := []Range[uint32]{{Lo: 0, Hi: 5}, {Lo: 10, Hi: 20}}
	assert.Equal(t, uint64(15), TotalLen(rs))
}
