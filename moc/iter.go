package moc

import "github.com/katalvlaran/gomoc/rangeset"

// Iterator is the single-method pull contract every lazy adaptor in this
// package implements: Next returns the next disjoint range in ascending
// order, or ok=false at exhaustion. Iterators borrow their source for
// their lifetime and are consumed left-to-right (spec.md §3 lifecycles).
type Iterator[T ~uint32 | ~uint64] interface {
	Next() (rangeset.Range[T], bool)
}

// sliceIter adapts a normalized range slice to Iterator.
type sliceIter[T ~uint32 | ~uint64] struct {
	ranges []rangeset.Range[T]
	i      int
}

func (s *sliceIter[T]) Next() (rangeset.Range[T], bool) {
	if s.i >= len(s.ranges) {
		return rangeset.Range[T]{}, false
	}
	r := s.ranges[s.i]
	s.i++
	return r, true
}

// Iter returns a fresh Iterator over m's backing ranges.
func (m RangeMOC[T, Q]) Iter() Iterator[T] {
	return &sliceIter[T]{ranges: m.ranges}
}

// Collect drains it into a plain slice, in order. Used to materialize the
// result of an operator pipeline into a new RangeMOC.
func Collect[T ~uint32 | ~uint64](it Iterator[T]) []rangeset.Range[T] {
	var out []rangeset.Range[T]
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}
