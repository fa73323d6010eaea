package moc

import "github.com/katalvlaran/gomoc/rangeset"

// andIter implements the two-pointer intersection sweep of spec.md §4.D:
// yield [max(loL,loR), min(hiL,hiR)) whenever non-empty, advancing
// whichever side has the smaller Hi (that side is now fully consumed and
// cannot contribute any further overlap); ties advance both sides.
type andIter[T ~uint32 | ~uint64] struct {
	a, b     Iterator[T]
	curA     rangeset.Range[T]
	curB     rangeset.Range[T]
	okA, okB bool
}

func newAndIter[T ~uint32 | ~uint64](a, b Iterator[T]) *andIter[T] {
	it := &andIter[T]{a: a, b: b}
	it.curA, it.okA = a.Next()
	it.curB, it.okB = b.Next()
	return it
}

func (it *andIter[T]) Next() (rangeset.Range[T], bool) {
	for it.okA && it.okB {
		lo := it.curA.Lo
		if it.curB.Lo > lo {
			lo = it.curB.Lo
		}
		hi := it.curA.Hi
		if it.curB.Hi < hi {
			hi = it.curB.Hi
		}

		aHi, bHi := it.curA.Hi, it.curB.Hi
		if aHi <= bHi {
			it.curA, it.okA = it.a.Next()
		}
		if bHi <= aHi {
			it.curB, it.okB = it.b.Next()
		}

		if lo < hi {
			return rangeset.Range[T]{Lo: lo, Hi: hi}, true
		}
	}
	return rangeset.Range[T]{}, false
}

// And lazily streams the intersection of a and b.
func And[T ~uint32 | ~uint64](a, b Iterator[T]) Iterator[T] {
	return newAndIter(a, b)
}
