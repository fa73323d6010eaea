package moc

import (
	"container/heap"

	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// heapItem pairs a peeked range with the index of its source iterator, so
// that ties are broken by iterator index — stable multi-OR ordering, per
// spec.md §4.D "Stable in iterator order for equal keys" — mirroring the
// (distance, vertexID) pairing dijkstra.go pushes onto its container/heap
// priority queue.
type heapItem[T ~uint32 | ~uint64] struct {
	r   rangeset.Range[T]
	src int
}

// rangeHeap is a container/heap.Interface over pending heapItems, ordered
// by Lo ascending and, for ties, by source iterator index ascending.
type rangeHeap[T ~uint32 | ~uint64] []heapItem[T]

func (h rangeHeap[T]) Len() int { return len(h) }
func (h rangeHeap[T]) Less(i, j int) bool {
	if h[i].r.Lo != h[j].r.Lo {
		return h[i].r.Lo < h[j].r.Lo
	}
	return h[i].src < h[j].src
}
func (h rangeHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *rangeHeap[T]) Push(x any)        { *h = append(*h, x.(heapItem[T])) }
func (h *rangeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// multiOrIter drives a k-way coalescing merge over independent sources
// using a min-heap keyed by (Lo, source index), peeling the minimum and
// coalescing exactly as the binary Or driver does.
type multiOrIter[T ~uint32 | ~uint64] struct {
	srcs []Iterator[T]
	h    rangeHeap[T]
}

func newMultiOrIter[T ~uint32 | ~uint64](srcs []Iterator[T]) *multiOrIter[T] {
	m := &multiOrIter[T]{srcs: srcs}
	for i, s := range srcs {
		if r, ok := s.Next(); ok {
			m.h = append(m.h, heapItem[T]{r: r, src: i})
		}
	}
	heap.Init(&m.h)
	return m
}

func (m *multiOrIter[T]) popMin() (heapItem[T], bool) {
	if m.h.Len() == 0 {
		return heapItem[T]{}, false
	}
	item := heap.Pop(&m.h).(heapItem[T])
	if next, ok := m.srcs[item.src].Next(); ok {
		heap.Push(&m.h, heapItem[T]{r: next, src: item.src})
	}
	return item, true
}

func (m *multiOrIter[T]) Next() (rangeset.Range[T], bool) {
	first, ok := m.popMin()
	if !ok {
		return rangeset.Range[T]{}, false
	}
	pending := first.r
	for m.h.Len() > 0 {
		if m.h[0].r.Lo > pending.Hi {
			break
		}
		item, _ := m.popMin()
		if item.r.Hi > pending.Hi {
			pending.Hi = item.r.Hi
		}
	}
	return pending, true
}

// MultiOr lazily streams the union of k independent range iterators using
// a min-heap merge, stable in iterator order for equal keys.
func MultiOr[T ~uint32 | ~uint64](srcs []Iterator[T]) Iterator[T] {
	return newMultiOrIter(srcs)
}

// UnionAll collects and normalizes the multi-way union of the given MOCs,
// declared at the maximum depth among them. Used by region builders that
// fan out many small constructors (cones, boxes) and need a final union.
func UnionAll[T qty.Index, Q qty.Quantity](mocs []RangeMOC[T, Q]) RangeMOC[T, Q] {
	if len(mocs) == 0 {
		var zero RangeMOC[T, Q]
		return zero
	}
	iters := make([]Iterator[T], len(mocs))
	var d uint8
	for i, m := range mocs {
		iters[i] = m.Iter()
		d = maxDepth(d, m.depth)
	}
	out := Collect[T](MultiOr[T](iters))
	return fromNormalizedRanges(mocs[0].q, d, out)
}
