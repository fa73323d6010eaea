package rangeset

import "github.com/katalvlaran/gomoc/qty"

// IterCells decomposes every range into cells at depth <= dMax using the
// power-of-two run-decomposition (qty.DecomposeRange), concatenated across
// the (already normalized) input ranges in order.
func IterCells[T qty.Index](q qty.Quantity, dMax uint8, ranges []Range[T]) []qty.Cell {
	var out []qty.Cell
	for _, r := range ranges {
		out = append(out, qty.DecomposeRange[T](q, dMax, r.Lo, r.Hi)...)
	}
	return out
}

// InsertCell appends the range implied by cell (d, i) to ranges without
// normalizing; callers normalize once after a batch of inserts (lazy
// normalization, per spec.md §4.B).
func InsertCell[T qty.Index](q qty.Quantity, ranges []Range[T], d uint8, i uint64) []Range[T] {
	lo, hi := qty.CellToRange[T](q, d, i)
	return append(ranges, Range[T]{Lo: lo, Hi: hi})
}
