package moc2

import (
	"sort"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// taggedRange pairs a flattened outer range with the index of the element
// it belongs to.
type taggedRange[T qty.Index] struct {
	r       rangeset.Range[T]
	elemIdx int
}

// flatten concatenates every element's outer ranges, tagged by element
// index, in order. Since elements are pairwise-disjoint-by-outer and
// sorted, and each element's own outer ranges are themselves sorted and
// disjoint, the concatenation is already a single sorted, disjoint list.
func flatten[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](elements []Element[T, Q, U, R]) []taggedRange[T] {
	var out []taggedRange[T]
	for i, e := range elements {
		for _, r := range e.Outer.Ranges() {
			out = append(out, taggedRange[T]{r: r, elemIdx: i})
		}
	}
	return out
}

// ownerAt returns the element index owning value v in a flattened,
// sorted, disjoint tagged range list, or -1 if uncovered.
func ownerAt[T qty.Index](flat []taggedRange[T], v T) int {
	i := sort.Search(len(flat), func(i int) bool { return flat[i].r.Hi > v })
	if i < len(flat) && flat[i].r.Lo <= v {
		return flat[i].elemIdx
	}
	return -1
}

// breakpoints collects and sorts every distinct Lo/Hi boundary across both
// flattened lists.
func breakpoints[T qty.Index](a, b []taggedRange[T]) []T {
	set := make(map[T]struct{}, 2*(len(a)+len(b)))
	for _, t := range a {
		set[t.r.Lo] = struct{}{}
		set[t.r.Hi] = struct{}{}
	}
	for _, t := range b {
		set[t.r.Lo] = struct{}{}
		set[t.r.Hi] = struct{}{}
	}
	out := make([]T, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Or computes the union of two 2-D MOCs: it collects every outer range
// boundary of both inputs, and for each window between consecutive
// boundaries emits OR(inner_L, inner_R) where both sides cover it and the
// single present side's inner MOC elsewhere. Both inputs are flattened and
// the result is built in memory; it is not a single-pass stream. Adjacent
// output elements whose inner MOC is set-equal are coalesced into one,
// maintaining the canonical-form guarantee.
func Or[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](a, b RangeMOC2[T, Q, U, R]) RangeMOC2[T, Q, U, R] {
	flatA := flatten(a.elements)
	flatB := flatten(b.elements)
	bps := breakpoints(flatA, flatB)

	var rawOuter []rangeset.Range[T]
	var rawInner []moc.RangeMOC[U, R]

	var outerQ Q
	var innerR R
	if len(a.elements) > 0 {
		outerQ = a.elements[0].Outer.Quantity()
		innerR = a.elements[0].Inner.Quantity()
	} else if len(b.elements) > 0 {
		outerQ = b.elements[0].Outer.Quantity()
		innerR = b.elements[0].Inner.Quantity()
	}
	dOuter := outerDepth(a, b)
	dInner := innerDepth(a, b)

	for k := 0; k+1 < len(bps); k++ {
		lo, hi := bps[k], bps[k+1]
		if lo >= hi {
			continue
		}
		ia := ownerAt(flatA, lo)
		ib := ownerAt(flatB, lo)
		if ia < 0 && ib < 0 {
			continue
		}
		var inner moc.RangeMOC[U, R]
		switch {
		case ia >= 0 && ib >= 0:
			inner = moc.Union(a.elements[ia].Inner, b.elements[ib].Inner)
		case ia >= 0:
			inner = a.elements[ia].Inner
		default:
			inner = b.elements[ib].Inner
		}
		rawOuter = append(rawOuter, rangeset.Range[T]{Lo: lo, Hi: hi})
		rawInner = append(rawInner, inner)
	}

	return coalesce(rawOuter, rawInner, outerQ, innerR, dOuter, dInner)
}

func outerDepth[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](a, b RangeMOC2[T, Q, U, R]) uint8 {
	var d uint8
	for _, e := range a.elements {
		if e.Outer.Depth() > d {
			d = e.Outer.Depth()
		}
	}
	for _, e := range b.elements {
		if e.Outer.Depth() > d {
			d = e.Outer.Depth()
		}
	}
	return d
}

func innerDepth[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](a, b RangeMOC2[T, Q, U, R]) uint8 {
	var d uint8
	for _, e := range a.elements {
		if e.Inner.Depth() > d {
			d = e.Inner.Depth()
		}
	}
	for _, e := range b.elements {
		if e.Inner.Depth() > d {
			d = e.Inner.Depth()
		}
	}
	return d
}

// coalesce merges adjacent (touching) raw outer ranges whose paired inner
// MOC is set-equal (same cell listing), producing the canonical,
// coarsest-partition element sequence.
func coalesce[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](rawOuter []rangeset.Range[T], rawInner []moc.RangeMOC[U, R], outerQ Q, innerR R, dOuter, dInner uint8) RangeMOC2[T, Q, U, R] {
	var elements []Element[T, Q, U, R]
	i := 0
	for i < len(rawOuter) {
		j := i + 1
		merged := []rangeset.Range[T]{rawOuter[i]}
		for j < len(rawOuter) && rawOuter[j].Lo == merged[len(merged)-1].Hi && innerEqual(rawInner[i], rawInner[j]) {
			merged = append(merged, rawOuter[j])
			j++
		}
		outerMoc := buildOuter(outerQ, dOuter, merged)
		elements = append(elements, Element[T, Q, U, R]{Outer: outerMoc, Inner: rawInner[i]})
		i = j
	}
	return New(elements)
}

func buildOuter[T qty.Index, Q qty.Quantity](q Q, d uint8, ranges []rangeset.Range[T]) moc.RangeMOC[T, Q] {
	m, _ := moc.FromRanges[T, Q](q, d, ranges, false)
	return m
}

func innerEqual[U qty.Index, R qty.Quantity](a, b moc.RangeMOC[U, R]) bool {
	ra, rb := a.Ranges(), b.Ranges()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}
