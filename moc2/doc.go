// Package moc2 implements RangeMOC2, the 2-D (product) Multi-Order
// Coverage map: an ordered sequence of (outer, inner) elements where the
// outer components are pairwise disjoint and sorted by their lowest
// value. This is the ST-MOC / SF-MOC representation of spec.md §4.E.
//
// Or flattens the outer ranges of both inputs, cuts the outer axis at every
// range boundary, and for each resulting window unions the inner MOCs of
// the elements that own it (moc.Union); where only one side owns a window,
// that side's inner MOC is kept unchanged. The whole result is built in
// memory, not streamed. TimeFold and SpaceFold scan their input left to
// right and return the union of the matching components.
package moc2
