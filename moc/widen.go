package moc

import (
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// widen32to64 promotes a uint32 range slice to uint64 without re-shifting:
// the values already live in a common deepest-level index space, so a
// width change is a pure reinterpretation. Used when combining MOCs of
// different index widths (spec.md §9 "Width interoperation").
func widen32to64(in []rangeset.Range[uint32]) []rangeset.Range[uint64] {
	out := make([]rangeset.Range[uint64], len(in))
	for i, r := range in {
		out[i] = rangeset.Range[uint64]{Lo: uint64(r.Lo), Hi: uint64(r.Hi)}
	}
	return out
}

// Widen64 converts this RangeMOC to the wider uint64 index type, preserving
// its quantity tag and declared depth.
func Widen64[Q qty.Quantity](m RangeMOC[uint32, Q]) RangeMOC[uint64, Q] {
	return fromNormalizedRanges(m.q, m.depth, widen32to64(m.ranges))
}
