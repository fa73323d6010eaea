package moc

import (
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// FromDepth returns an empty MOC declared at depth d.
//
// Errors:
//   - ErrInvalidDepth: d > q.MaxDepth().
func FromDepth[T qty.Index, Q qty.Quantity](q Q, d uint8) (RangeMOC[T, Q], error) {
	if err := qty.ValidateDepth(q, d); err != nil {
		return RangeMOC[T, Q]{}, ErrInvalidDepth
	}
	return RangeMOC[T, Q]{depth: d, q: q}, nil
}

// FromCells builds a MOC from an iterator of (depth, index) cells, each
// promoted to its range and then normalized. The declared depth is dMax
// regardless of the depths observed in cells (cells deeper than dMax are
// rejected with ErrInvalidDepth, matching FromRanges' strict alignment
// contract).
func FromCells[T qty.Index, Q qty.Quantity](q Q, dMax uint8, cells []qty.Cell) (RangeMOC[T, Q], error) {
	if err := qty.ValidateDepth(q, dMax); err != nil {
		return RangeMOC[T, Q]{}, ErrInvalidDepth
	}
	ranges := make([]rangeset.Range[T], 0, len(cells))
	for _, c := range cells {
		if err := qty.ValidateDepth(q, c.Depth); err != nil {
			return RangeMOC[T, Q]{}, ErrInvalidDepth
		}
		if err := qty.ValidateIndex(q, c.Depth, c.Idx); err != nil {
			return RangeMOC[T, Q]{}, ErrIndexOutOfBounds
		}
		if c.Depth > dMax {
			return RangeMOC[T, Q]{}, ErrInvalidDepth
		}
		lo, hi := qty.CellToRange[T](q, c.Depth, c.Idx)
		ranges = append(ranges, rangeset.Range[T]{Lo: lo, Hi: hi})
	}
	return RangeMOC[T, Q]{depth: dMax, ranges: rangeset.Normalize(ranges), q: q}, nil
}

// FromUniqs builds a MOC from a sequence of FITS v1.0 UNIQ numbers. The
// declared depth is the maximum depth observed among the decoded cells.
func FromUniqs[T qty.Index, Q qty.Quantity](q Q, uniqs []uint64) (RangeMOC[T, Q], error) {
	cells := make([]qty.Cell, len(uniqs))
	var dMax uint8
	for i, u := range uniqs {
		c := qty.UniqToCell(q, u)
		cells[i] = c
		if c.Depth > dMax {
			dMax = c.Depth
		}
	}
	return FromCells[T, Q](q, dMax, cells)
}

// FromRanges normalizes the given ranges and declares them at depth dMax.
// In strict mode, every Lo/Hi must be a multiple of 2^shift(dMax); a
// violation returns ErrAlignment.
func FromRanges[T qty.Index, Q qty.Quantity](q Q, dMax uint8, ranges []rangeset.Range[T], strict bool) (RangeMOC[T, Q], error) {
	if err := qty.ValidateDepth(q, dMax); err != nil {
		return RangeMOC[T, Q]{}, ErrInvalidDepth
	}
	if strict {
		mask := T(uint64(1)<<qty.Shift(q, dMax)) - 1
		for _, r := range ranges {
			if uint64(r.Lo)&uint64(mask) != 0 || uint64(r.Hi)&uint64(mask) != 0 {
				return RangeMOC[T, Q]{}, ErrAlignment
			}
		}
	}
	norm := rangeset.Normalize(ranges)
	nMax := T(qty.NMax(q, q.MaxDepth()))
	for _, r := range norm {
		if r.Hi > nMax {
			return RangeMOC[T, Q]{}, ErrIndexOutOfBounds
		}
	}
	return RangeMOC[T, Q]{depth: dMax, ranges: norm, q: q}, nil
}

// fromNormalizedRanges wraps an already-normalized, already-validated range
// slice without re-checking invariants; used internally by operators that
// produce normalized output by construction (OR/AND/etc drivers).
func fromNormalizedRanges[T qty.Index, Q qty.Quantity](q Q, d uint8, ranges []rangeset.Range[T]) RangeMOC[T, Q] {
	return RangeMOC[T, Q]{depth: d, ranges: ranges, q: q}
}
