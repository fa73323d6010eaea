package moc

import (
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// degradeIter rounds every input range down/up to the alignment of a
// coarser depth d' (lo &^ m, (hi+m) &^ m with m = 2^shift(d')-1), per
// spec.md §4.D. Rounding can make adjacent rounded ranges collide, so the
// rounded stream is re-fed through the OR driver to re-merge them.
func degradeIter[T qty.Index, Q qty.Quantity](q Q, dPrime uint8, src Iterator[T]) Iterator[T] {
	mask := T(uint64(1)<<qty.Shift(q, dPrime)) - 1
	rounded := &roundingIter[T]{src: src, mask: mask}
	return Or[T](rounded, emptyIter[T]{})
}

// roundingIter applies the floor/ceil alignment to each source range
// without attempting to merge; Degrade feeds this through Or to restore
// the disjoint/normalized invariant.
type roundingIter[T ~uint32 | ~uint64] struct {
	src  Iterator[T]
	mask T
}

func (r *roundingIter[T]) Next() (rangeset.Range[T], bool) {
	v, ok := r.src.Next()
	if !ok {
		return rangeset.Range[T]{}, false
	}
	lo := v.Lo &^ r.mask
	hi := (v.Hi + r.mask) &^ r.mask
	return rangeset.Range[T]{Lo: lo, Hi: hi}, true
}

// emptyIter is the empty iterator, used as Or's second operand when only
// one stream needs re-merging.
type emptyIter[T ~uint32 | ~uint64] struct{}

func (emptyIter[T]) Next() (rangeset.Range[T], bool) { return rangeset.Range[T]{}, false }

// Degrade returns a new RangeMOC, losslessly collapsed to the coarser
// declared depth dPrime. The result is a superset of m as a set
// (degrade(d,A) ⊇ A) and has declared depth dPrime.
//
// Degrade only makes sense when dPrime <= m.Depth(); degrading to a finer
// depth is a no-op performed by Refine instead.
func Degrade[T qty.Index, Q qty.Quantity](m RangeMOC[T, Q], dPrime uint8) RangeMOC[T, Q] {
	if dPrime >= m.depth {
		return fromNormalizedRanges(m.q, dPrime, m.ranges)
	}
	out := Collect[T](degradeIter[T](m.q, dPrime, m.Iter()))
	return fromNormalizedRanges(m.q, dPrime, out)
}

// Refine only adjusts the declared depth to a finer dPrime; the covered
// set is unchanged (spec.md §4.D).
func Refine[T qty.Index, Q qty.Quantity](m RangeMOC[T, Q], dPrime uint8) RangeMOC[T, Q] {
	return fromNormalizedRanges(m.q, dPrime, m.ranges)
}
