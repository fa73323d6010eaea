package moc

import "github.com/katalvlaran/gomoc/rangeset"

// orIter implements the two-pointer union merge of spec.md §4.D: maintain
// a current pending output range [a,b); at each step peek whichever input
// has the smaller Lo. If it overlaps or touches [a,b), fold it in and
// extend b; otherwise stop and emit the pending range, leaving the peeked
// value staged as the next pending range.
type orIter[T ~uint32 | ~uint64] struct {
	a, b     Iterator[T]
	curA     rangeset.Range[T]
	curB     rangeset.Range[T]
	okA, okB bool
}

func newOrIter[T ~uint32 | ~uint64](a, b Iterator[T]) *orIter[T] {
	o := &orIter[T]{a: a, b: b}
	o.curA, o.okA = a.Next()
	o.curB, o.okB = b.Next()
	return o
}

// popSmallest consumes and returns whichever of curA/curB currently has the
// smaller Lo (ties favor a), refilling that side from its source iterator.
func (o *orIter[T]) popSmallest() (rangeset.Range[T], bool) {
	switch {
	case o.okA && o.okB:
		if o.curA.Lo <= o.curB.Lo {
			r := o.curA
			o.curA, o.okA = o.a.Next()
			return r, true
		}
		r := o.curB
		o.curB, o.okB = o.b.Next()
		return r, true
	case o.okA:
		r := o.curA
		o.curA, o.okA = o.a.Next()
		return r, true
	case o.okB:
		r := o.curB
		o.curB, o.okB = o.b.Next()
		return r, true
	default:
		return rangeset.Range[T]{}, false
	}
}

// peekLo returns the smaller of curA.Lo/curB.Lo and whether either side
// still has a value staged.
func (o *orIter[T]) peekLo() (T, bool) {
	switch {
	case o.okA && o.okB:
		if o.curA.Lo <= o.curB.Lo {
			return o.curA.Lo, true
		}
		return o.curB.Lo, true
	case o.okA:
		return o.curA.Lo, true
	case o.okB:
		return o.curB.Lo, true
	default:
		var zero T
		return zero, false
	}
}

func (o *orIter[T]) Next() (rangeset.Range[T], bool) {
	pending, ok := o.popSmallest()
	if !ok {
		return rangeset.Range[T]{}, false
	}
	for {
		lo, has := o.peekLo()
		if !has || lo > pending.Hi {
			return pending, true
		}
		next, _ := o.popSmallest()
		if next.Hi > pending.Hi {
			pending.Hi = next.Hi
		}
	}
}

// Or lazily streams the union of a and b. Both inputs must already be
// sorted and disjoint (normalized); the result is too. Declared depth of
// the resulting RangeMOC (when collected via Union) is max(depth_a, depth_b).
func Or[T ~uint32 | ~uint64](a, b Iterator[T]) Iterator[T] {
	return newOrIter(a, b)
}
