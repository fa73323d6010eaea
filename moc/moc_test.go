package moc

import (
	"testing"

	"github.com/katalvlaran/gomoc/qty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(t *testing.T, d uint8, cells ...qty.Cell) RangeMOC[uint64, qty.Space] {
	t.Helper()
	m, err := FromCells[uint64, qty.Space](qty.Space{}, d, cells)
	require.NoError(t, err)
	return m
}

func TestDegrade_SingleCellToDepth0(t *testing.T) {
	m := mk(t, 11, qty.Cell{Depth: 11, Idx: 0})
	out := Degrade(m, 0)
	assert.Equal(t, uint8(0), out.Depth())
	assert.Equal(t, []qty.Cell{{Depth: 0, Idx: 0}}, out.Cells())
}

func TestComplement_Scenario(t *testing.T) {
	// 0/0 3 5 7 9-10 at depth 0 (base=12 cells).
	m := mk(t, 0,
		qty.Cell{Depth: 0, Idx: 0},
		qty.Cell{Depth: 0, Idx: 3},
		qty.Cell{Depth: 0, Idx: 5},
		qty.Cell{Depth: 0, Idx: 7},
		qty.Cell{Depth: 0, Idx: 9},
		qty.Cell{Depth: 0, Idx: 10},
	)
	comp := Not(m)
	want := []qty.Cell{
		{Depth: 0, Idx: 1}, {Depth: 0, Idx: 2},
		{Depth: 0, Idx: 4},
		{Depth: 0, Idx: 6},
		{Depth: 0, Idx: 8},
		{Depth: 0, Idx: 11},
	}
	assert.Equal(t, want, comp.Cells())
}

func TestUnionWithComplement_CoverageIsFull(t *testing.T) {
	m := mk(t, 0, qty.Cell{Depth: 0, Idx: 0}, qty.Cell{Depth: 0, Idx: 5})
	u := Union(m, Not(m))
	assert.InDelta(t, 1.0, u.CoverageFraction(), 1e-12)
}

func TestIntersectionWithComplementIsEmpty(t *testing.T) {
	m := mk(t, 0, qty.Cell{Depth: 0, Idx: 0}, qty.Cell{Depth: 0, Idx: 5})
	i := Intersection(m, Not(m))
	assert.True(t, i.IsEmpty())
}

func TestMinusAndXor_IdenticalAtDepth9(t *testing.T) {
	// A and B start from the same empty S-MOC at d=9 and both receive the
	// same extra cell at d=11, so A's extra cell falls inside B: A-B and
	// A^B are both empty.
	a := mk(t, 9)
	extra := mk(t, 11, qty.Cell{Depth: 11, Idx: 3})
	b := Union(a, extra)
	aPrime := Union(a, extra) // A also gets the same extra cells, falling inside B
	diff := Difference(aPrime, b)
	assert.True(t, diff.IsEmpty())
	sym := SymmetricDifference(aPrime, b)
	assert.True(t, sym.IsEmpty())
}

func TestSymmetricDifference_DisjointOperandsIncludesBothSides(t *testing.T) {
	a := mk(t, 3, qty.Cell{Depth: 3, Idx: 10}, qty.Cell{Depth: 3, Idx: 20})
	b := mk(t, 3, qty.Cell{Depth: 3, Idx: 20}, qty.Cell{Depth: 3, Idx: 30})
	sym := SymmetricDifference(a, b)
	want := []qty.Cell{{Depth: 3, Idx: 10}, {Depth: 3, Idx: 30}}
	assert.Equal(t, want, sym.Cells())
	// L\R and R\L must each independently survive a full, un-shared pass.
	assert.Equal(t, []qty.Cell{{Depth: 3, Idx: 10}}, Difference(a, b).Cells())
	assert.Equal(t, []qty.Cell{{Depth: 3, Idx: 30}}, Difference(b, a).Cells())
}

func TestLaws_IdempotentAndCommutative(t *testing.T) {
	a := mk(t, 3, qty.Cell{Depth: 3, Idx: 10}, qty.Cell{Depth: 3, Idx: 50})
	assert.Equal(t, a.Cells(), Union(a, a).Cells())
	assert.Equal(t, a.Cells(), Intersection(a, a).Cells())
	assert.True(t, Difference(a, a).IsEmpty())
	assert.True(t, SymmetricDifference(a, a).IsEmpty())

	b := mk(t, 3, qty.Cell{Depth: 3, Idx: 20}, qty.Cell{Depth: 3, Idx: 50})
	assert.Equal(t, Union(a, b).Cells(), Union(b, a).Cells())
	assert.Equal(t, Intersection(a, b).Cells(), Intersection(b, a).Cells())
}

func TestDeMorgan(t *testing.T) {
	a := mk(t, 2, qty.Cell{Depth: 2, Idx: 4})
	b := mk(t, 2, qty.Cell{Depth: 2, Idx: 9})
	lhs := Not(Union(a, b))
	rhs := Intersection(Not(a), Not(b))
	assert.Equal(t, lhs.Cells(), rhs.Cells())
}

func TestMultiOr(t *testing.T) {
	a := mk(t, 3, qty.Cell{Depth: 3, Idx: 1})
	b := mk(t, 3, qty.Cell{Depth: 3, Idx: 2})
	c := mk(t, 3, qty.Cell{Depth: 3, Idx: 100})
	out := Collect[uint64](MultiOr[uint64]([]Iterator[uint64]{a.Iter(), b.Iter(), c.Iter()}))
	got := fromNormalizedRanges(qty.Space{}, 3, out)
	assert.Equal(t, 3, len(got.Cells()))
}
