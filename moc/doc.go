// Package moc implements RangeMOC, the declared-depth + sorted-disjoint-
// ranges container at the heart of every Multi-Order Coverage map, and the
// lazy iterator algebra (union, intersection, difference, symmetric
// difference, complement, degrade, refine, multi-union) that operates on
// it.
//
// Every operator is expressed as a pull-based, two-pointer (or k-way heap)
// adaptor over Iterator[T]: none of them materialize an intermediate
// RangeMOC, so a long operator pipeline built from the iterator-level
// functions (Or, And, Minus, Xor, Complement, MultiOr) costs O(1) auxiliary
// memory per binary stage (MultiOr keeps one pending range per source) and O(|L|+|R|) total work, independent of
// how many stages are chained before a terminal Collect.
//
// RangeMOC values are immutable after construction: every operator returns
// a new RangeMOC (or iterator), never mutates its receiver, matching
// spec.md §5's "RangeMOC values are immutable ... safe to share by
// reference across threads".
package moc
