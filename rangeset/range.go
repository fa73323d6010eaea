package rangeset

import "sort"

// Range is a half-open interval [Lo, Hi) in the deepest-level index space
// of some Quantity. It carries no quantity tag itself: callers are
// responsible for keeping Ranges associated with a single Quantity/Index
// width, as RangeMOC does.
type Range[T ~uint32 | ~uint64] struct {
	Lo, Hi T
}

// Empty reports whether the range contains no values.
func (r Range[T]) Empty() bool { return r.Hi <= r.Lo }

// Len returns Hi-Lo, the number of covered values.
func (r Range[T]) Len() T { return r.Hi - r.Lo }

// Normalize sorts ranges by Lo and merges overlapping or touching entries
// in a single pass, dropping any empty (Hi <= Lo) entry. The input slice is
// not mutated; a new, normalized slice is returned.
//
// This is the single source of truth for the "sorted, disjoint, normalized"
// invariant every RangeMOC must satisfy after construction or mutation.
func Normalize[T ~uint32 | ~uint64](in []Range[T]) []Range[T] {
	if len(in) == 0 {
		return nil
	}
	work := make([]Range[T], 0, len(in))
	for _, r := range in {
		if !r.Empty() {
			work = append(work, r)
		}
	}
	if len(work) == 0 {
		return nil
	}
	sort.SliceStable(work, func(i, j int) bool { return work[i].Lo < work[j].Lo })

	out := make([]Range[T], 0, len(work))
	cur := work[0]
	for _, r := range work[1:] {
		if r.Lo <= cur.Hi { // overlapping or touching: merge
			if r.Hi > cur.Hi {
				cur.Hi = r.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)
	return out
}

// IsNormalized reports whether ranges are already sorted, pairwise
// disjoint and non-touching (hi_k < lo_{k+1}).
func IsNormalized[T ~uint32 | ~uint64](ranges []Range[T]) bool {
	for i := 1; i < len(ranges); i++ {
		if ranges[i-1].Hi >= ranges[i].Lo {
			return false
		}
	}
	for _, r := range ranges {
		if r.Empty() {
			return false
		}
	}
	return true
}

// ContainsValue performs a binary search for v over a normalized range
// slice.
func ContainsValue[T ~uint32 | ~uint64](ranges []Range[T], v T) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi > v })
	return i < len(ranges) && ranges[i].Lo <= v
}

// Intersects reports whether q overlaps any entry of a normalized range
// slice.
func Intersects[T ~uint32 | ~uint64](ranges []Range[T], q Range[T]) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi > q.Lo })
	return i < len(ranges) && ranges[i].Lo < q.Hi
}

// Contains reports whether q is entirely covered by a single entry of a
// normalized range slice.
func Contains[T ~uint32 | ~uint64](ranges []Range[T], q Range[T]) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi > q.Lo })
	return i < len(ranges) && ranges[i].Lo <= q.Lo && q.Hi <= ranges[i].Hi
}

// TotalLen sums Hi-Lo over all ranges, used for coverage-fraction
// computations.
func TotalLen[T ~uint32 | ~uint64](ranges []Range[T]) uint64 {
	var total uint64
	for _, r := range ranges {
		total += uint64(r.Hi - r.Lo)
	}
	return total
}
