package moc

import (
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// RangeMOC is the pair (dMax, ranges) specified in spec.md §3: a declared
// depth and a normalized, in-bounds, depth-aligned sequence of half-open
// ranges over the deepest-level index space of Q.
type RangeMOC[T qty.Index, Q qty.Quantity] struct {
	depth  uint8
	ranges []rangeset.Range[T]
	q      Q
}

// Depth returns the declared depth d_max.
func (m RangeMOC[T, Q]) Depth() uint8 { return m.depth }

// Quantity returns the quantity tag instance carried by this MOC.
func (m RangeMOC[T, Q]) Quantity() Q { return m.q }

// Ranges returns the normalized backing ranges. The returned slice must be
// treated as read-only: RangeMOC values are immutable by convention.
func (m RangeMOC[T, Q]) Ranges() []rangeset.Range[T] { return m.ranges }

// IsEmpty reports whether the MOC covers no values.
func (m RangeMOC[T, Q]) IsEmpty() bool { return len(m.ranges) == 0 }

// NRanges returns the number of disjoint ranges backing this MOC.
func (m RangeMOC[T, Q]) NRanges() int { return len(m.ranges) }

// ContainsValue reports whether v is covered by the MOC.
func (m RangeMOC[T, Q]) ContainsValue(v T) bool {
	return rangeset.ContainsValue(m.ranges, v)
}

// IntersectsMoc reports whether m and other share at least one value.
func (m RangeMOC[T, Q]) IntersectsMoc(other RangeMOC[T, Q]) bool {
	for it := And(m.Iter(), other.Iter()); ; {
		r, ok := it.Next()
		if !ok {
			return false
		}
		if !r.Empty() {
			return true
		}
	}
}

// ContainsMoc reports whether every value of other is covered by m, i.e.
// other - m is empty.
func (m RangeMOC[T, Q]) ContainsMoc(other RangeMOC[T, Q]) bool {
	for it := Minus(other.Iter(), m.Iter(), universe(m)); ; {
		r, ok := it.Next()
		if !ok {
			return true
		}
		if !r.Empty() {
			return false
		}
	}
}

// CoverageFraction returns Sum(hi-lo) / nMax(Dmax_Q), the fraction of the
// full quantity domain covered by this MOC (area/4pi for space, a
// normalized duty-cycle for time/frequency).
func (m RangeMOC[T, Q]) CoverageFraction() float64 {
	total := rangeset.TotalLen(m.ranges)
	nMax := qty.NMax(m.q, m.q.MaxDepth())
	if nMax == 0 {
		return 0
	}
	return float64(total) / float64(nMax)
}

// Cells returns the cell decomposition of this MOC at its own declared
// depth, via the power-of-two run-decomposition.
func (m RangeMOC[T, Q]) Cells() []qty.Cell {
	return rangeset.IterCells[T](m.q, m.depth, m.ranges)
}

// Uniqs returns the FITS v1.0 NUNIQ encoding of every cell in Cells(). Only
// meaningful for the Space quantity; for Time/Frequency it still produces a
// valid (if less conventional) bijective encoding.
func (m RangeMOC[T, Q]) Uniqs() []uint64 {
	cells := m.Cells()
	out := make([]uint64, len(cells))
	for i, c := range cells {
		out[i] = qty.Uniq(m.q, c.Depth, c.Idx)
	}
	return out
}
