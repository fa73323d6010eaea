package qty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeRange_SingleAlignedCell(t *testing.T) {
	var s Space
	lo, hi := CellToRange[uint64](s, 11, 0)
	cells := DecomposeRange[uint64](s, 11, lo, hi)
	assert.Equal(t, []Cell{{Depth: 11, Idx: 0}}, cells)
}

func TestDecomposeRange_FullDepth0(t *testing.T) {
	var s Space
	// The whole domain [0, nMax(Dmax)) at dMax=0 decomposes to the 12
	// individual depth-0 cells (no coarser depth exists above depth 0).
	universe := NMax(s, s.MaxDepth())
	cells := DecomposeRange[uint64](s, 0, 0, universe)
	assert.Len(t, cells, 12)
	for i, c := range cells {
		assert.Equal(t, uint8(0), c.Depth)
		assert.Equal(t, uint64(i), c.Idx)
	}
}

func TestDecomposeRange_PowerOfTwoRun(t *testing.T) {
	var s Space
	// The range of cell 1/0 (four depth-2 cells, shift=54 each) at
	// dMax=2 collapses to the single depth-1 cell 0 rather than four
	// depth-2 cells.
	lo, hi := CellToRange[uint64](s, 1, 0) // cell 1/0 covers 4 depth-2 cells' worth
	cells := DecomposeRange[uint64](s, 2, lo, hi)
	assert.Equal(t, []Cell{{Depth: 1, Idx: 0}}, cells)
}
