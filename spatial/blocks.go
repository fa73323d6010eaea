package spatial

import (
	"sort"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// block is one power-of-two-aligned cell from a RangeMOC's Cells()
// decomposition, carrying its promoted [lo,hi) range for owner lookups.
type block[T qty.Index] struct {
	depth  uint8
	idx    uint64
	lo, hi T
}

// blocksOf decomposes m into its cell blocks, sorted ascending by lo (the
// order Cells() already returns, since it is built from normalized,
// disjoint ranges).
func blocksOf[T qty.Index](m moc.RangeMOC[T, qty.Space]) []block[T] {
	cells := m.Cells()
	out := make([]block[T], len(cells))
	for i, c := range cells {
		lo, hi := qty.CellToRange[T](m.Quantity(), c.Depth, c.Idx)
		out[i] = block[T]{depth: c.Depth, idx: c.Idx, lo: lo, hi: hi}
	}
	return out
}

// owner returns the index of the block covering value v, or -1 if v is
// not covered by any block. blocks must be sorted ascending by lo.
func owner[T qty.Index](blocks []block[T], v T) int {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].lo > v })
	i--
	if i < 0 || i >= len(blocks) {
		return -1
	}
	if v < blocks[i].lo || v >= blocks[i].hi {
		return -1
	}
	return i
}
