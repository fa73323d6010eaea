package moc

import "github.com/katalvlaran/gomoc/qty"

func maxDepth(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// Union returns the lazily-computed union of a and b, declared at
// max(depth_a, depth_b).
func Union[T qty.Index, Q qty.Quantity](a, b RangeMOC[T, Q]) RangeMOC[T, Q] {
	d := maxDepth(a.depth, b.depth)
	out := Collect[T](Or[T](a.Iter(), b.Iter()))
	return fromNormalizedRanges(a.q, d, out)
}

// Intersection returns the lazily-computed intersection of a and b,
// declared at max(depth_a, depth_b).
func Intersection[T qty.Index, Q qty.Quantity](a, b RangeMOC[T, Q]) RangeMOC[T, Q] {
	d := maxDepth(a.depth, b.depth)
	out := Collect[T](And[T](a.Iter(), b.Iter()))
	return fromNormalizedRanges(a.q, d, out)
}

// universe returns n_max(Dmax_Q) for the quantity carried by m, the bound
// used by Complement/Difference/SymmetricDifference.
func universe[T qty.Index, Q qty.Quantity](m RangeMOC[T, Q]) T {
	return T(qty.NMax(m.q, m.q.MaxDepth()))
}

// Difference returns the lazily-computed left \ right (MINUS), declared at
// max(depth_left, depth_right). Not commutative.
func Difference[T qty.Index, Q qty.Quantity](left, right RangeMOC[T, Q]) RangeMOC[T, Q] {
	d := maxDepth(left.depth, right.depth)
	out := Collect[T](Minus[T](left.Iter(), right.Iter(), universe(left)))
	return fromNormalizedRanges(left.q, d, out)
}

// SymmetricDifference returns the lazily-computed XOR of a and b, declared
// at max(depth_a, depth_b).
func SymmetricDifference[T qty.Index, Q qty.Quantity](a, b RangeMOC[T, Q]) RangeMOC[T, Q] {
	d := maxDepth(a.depth, b.depth)
	out := Collect[T](Xor[T, Q](a, b, universe(a)))
	return fromNormalizedRanges(a.q, d, out)
}

// Not returns the complement of m within the full quantity universe,
// declared at m's own depth.
func Not[T qty.Index, Q qty.Quantity](m RangeMOC[T, Q]) RangeMOC[T, Q] {
	out := Collect[T](Complement[T](m.Iter(), universe(m)))
	return fromNormalizedRanges(m.q, m.depth, out)
}
