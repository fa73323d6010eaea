package moc

import "github.com/katalvlaran/gomoc/qty"

// Minus lazily streams left \ right (the values in left not in right),
// expressed through the same OR/AND/Complement drivers: left ∩ ¬right
// relative to the universe [0, universe). MINUS is not commutative.
func Minus[T ~uint32 | ~uint64](left, right Iterator[T], universe T) Iterator[T] {
	return And(left, Complement(right, universe))
}

// Xor computes the symmetric difference (left\right) ∪ (right\left) of two
// RangeMOCs. left\right and right\left each need their own pass over
// left/right's backing ranges, so each Minus call below is given a freshly
// constructed Iterator pair via Iter() rather than sharing already-primed
// Iterator values across both directions — Iterators are single-pass,
// stateful cursors, and Or primes both of its operands eagerly.
func Xor[T qty.Index, Q qty.Quantity](left, right RangeMOC[T, Q], universe T) Iterator[T] {
	return Or[T](
		Minus[T](left.Iter(), right.Iter(), universe),
		Minus[T](right.Iter(), left.Iter(), universe),
	)
}
