package moc2

import (
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// Element is a single (T-range-set, S/F-range-set) pair of a 2-D MOC.
type Element[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity] struct {
	Outer moc.RangeMOC[T, Q]
	Inner moc.RangeMOC[U, R]
}

// RangeMOC2 is a finite ordered sequence of Elements whose Outer components
// are pairwise disjoint and sorted by their lowest covered value (spec.md
// §3's RangeMOC2 invariant).
type RangeMOC2[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity] struct {
	elements []Element[T, Q, U, R]
}

// New wraps already-validated, already-sorted, pairwise-disjoint-by-outer
// elements into a RangeMOC2. Callers that cannot guarantee the invariant
// should build via Or/pipeline construction instead, which establishes it.
func New[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](elements []Element[T, Q, U, R]) RangeMOC2[T, Q, U, R] {
	return RangeMOC2[T, Q, U, R]{elements: elements}
}

// Elements returns the backing element slice, read-only by convention.
func (m RangeMOC2[T, Q, U, R]) Elements() []Element[T, Q, U, R] { return m.elements }

// IsEmpty reports whether the 2-D MOC has no elements.
func (m RangeMOC2[T, Q, U, R]) IsEmpty() bool { return len(m.elements) == 0 }

// lowestOuter returns the Lo of the first (smallest) outer range of an
// element's Outer MOC, used to order elements and drive the sweep.
func lowestOuter[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](e Element[T, Q, U, R]) T {
	rs := e.Outer.Ranges()
	if len(rs) == 0 {
		var zero T
		return zero
	}
	return rs[0].Lo
}
