package moc2

import (
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// TimeFold returns the union of every element's outer T-range-set whose
// inner S/F-range-set intersects the given set, streaming the input left
// to right (spec.md §4.E: ST MOC -> T-MOC).
func TimeFold[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](st RangeMOC2[T, Q, U, R], s moc.RangeMOC[U, R]) moc.RangeMOC[T, Q] {
	var matches []moc.RangeMOC[T, Q]
	for _, e := range st.elements {
		if e.Inner.IntersectsMoc(s) {
			matches = append(matches, e.Outer)
		}
	}
	if len(matches) == 0 {
		var q Q
		if len(st.elements) > 0 {
			q = st.elements[0].Outer.Quantity()
		}
		empty, _ := moc.FromDepth[T, Q](q, 0)
		return empty
	}
	return moc.UnionAll(matches)
}

// SpaceFold returns the union of every element's inner S/F-range-set whose
// outer T-range-set intersects the given set (spec.md §4.E: ST MOC ->
// S-MOC).
func SpaceFold[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](st RangeMOC2[T, Q, U, R], tset moc.RangeMOC[T, Q]) moc.RangeMOC[U, R] {
	var matches []moc.RangeMOC[U, R]
	for _, e := range st.elements {
		if e.Outer.IntersectsMoc(tset) {
			matches = append(matches, e.Inner)
		}
	}
	if len(matches) == 0 {
		var r R
		if len(st.elements) > 0 {
			r = st.elements[0].Inner.Quantity()
		}
		empty, _ := moc.FromDepth[U, R](r, 0)
		return empty
	}
	return moc.UnionAll(matches)
}
