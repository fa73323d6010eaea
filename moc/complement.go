package moc

import "github.com/katalvlaran/gomoc/rangeset"

// complementIter streams the gaps of its source relative to the universe
// [0, universe): spec.md §4.D complement operator. Empty input yields the
// full universe as a single range.
type complementIter[T ~uint32 | ~uint64] struct {
	src      Iterator[T]
	universe T
	prevHi   T
	started  bool
	done     bool
}

func newComplementIter[T ~uint32 | ~uint64](src Iterator[T], universe T) *complementIter[T] {
	return &complementIter[T]{src: src, universe: universe}
}

func (c *complementIter[T]) Next() (rangeset.Range[T], bool) {
	if c.done {
		return rangeset.Range[T]{}, false
	}
	for {
		r, ok := c.src.Next()
		if !ok {
			// bracket by [prevHi, universe)
			c.done = true
			if c.prevHi < c.universe {
				out := rangeset.Range[T]{Lo: c.prevHi, Hi: c.universe}
				c.prevHi = c.universe
				return out, true
			}
			return rangeset.Range[T]{}, false
		}
		gapLo := c.prevHi
		c.prevHi = r.Hi
		if gapLo < r.Lo {
			return rangeset.Range[T]{Lo: gapLo, Hi: r.Lo}, true
		}
		// no gap before this range (it starts at 0, or touches the
		// previous range which cannot happen for normalized input
		// unless gapLo==r.Lo exactly): continue to the next source range.
	}
}

// Complement streams the gaps of src within [0, universe), bracketed by
// [0, lo_first) and [hi_last, universe) where relevant.
func Complement[T ~uint32 | ~uint64](src Iterator[T], universe T) Iterator[T] {
	return newComplementIter(src, universe)
}
