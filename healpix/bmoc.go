package healpix

import "github.com/katalvlaran/gomoc/qty"

// BMOC is the transient, cell-level coverage spec.md §3 describes: a list
// of (depth, index) cells each flagged in? (covered) and visited? (was
// this leaf actually visited during recursive rasterization, as opposed to
// inherited from an ancestor fully inside/outside). BMOC values are never
// persisted; they exist only to be converted into a normalized RangeMOC.
type BMOC struct {
	Cells []BCell
}

// BCell is one flagged leaf of a BMOC.
type BCell struct {
	Depth   uint8
	Idx     uint64
	In      bool
	Visited bool
}

// ToCells filters In cells and returns their (depth, index) pairs, ready
// for moc.FromCells — the conversion spec.md §3 prescribes: (i) filter
// in?, (ii) promote to ranges, (iii) sort and merge (the last two steps
// happen inside FromCells/Normalize).
func (b BMOC) ToCells() []qty.Cell {
	out := make([]qty.Cell, 0, len(b.Cells))
	for _, c := range b.Cells {
		if c.In {
			out = append(out, qty.Cell{Depth: c.Depth, Idx: c.Idx})
		}
	}
	return out
}
