package spatial

import (
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// dsu is a slice-indexed disjoint-set union with path compression and
// union-by-rank, the same discipline prim_kruskal's Kruskal implementation
// uses over vertex IDs, adapted here to block indices.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(x, y int) {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
}

// Split partitions m into its connected components under Conn4 (direct)
// or Conn8 (indirect) adjacency, returning one RangeMOC per component.
func Split[T qty.Index](m moc.RangeMOC[T, qty.Space], indirect bool, opts ...Option) []moc.RangeMOC[T, qty.Space] {
	cfg := newConfig(opts...)
	blocks := blocksOf(m)
	if len(blocks) == 0 {
		return nil
	}
	d := newDSU(len(blocks))
	for i, b := range blocks {
		for _, n := range neighboursOf(cfg, indirect, b.depth, b.idx) {
			lo, _ := qty.CellToRange[T](m.Quantity(), n.Depth, n.Idx)
			if j := owner(blocks, lo); j >= 0 {
				d.union(i, j)
			}
		}
	}

	groups := make(map[int][]qty.Cell)
	order := make([]int, 0)
	for i, b := range blocks {
		root := d.find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], qty.Cell{Depth: b.depth, Idx: b.idx})
	}

	out := make([]moc.RangeMOC[T, qty.Space], 0, len(order))
	for _, root := range order {
		comp, err := moc.FromCells[T, qty.Space](m.Quantity(), m.Depth(), groups[root])
		if err != nil {
			continue
		}
		out = append(out, comp)
	}
	return out
}

// SplitCount returns the number of connected components, without
// materializing each as a RangeMOC.
func SplitCount[T qty.Index](m moc.RangeMOC[T, qty.Space], indirect bool, opts ...Option) int {
	cfg := newConfig(opts...)
	blocks := blocksOf(m)
	if len(blocks) == 0 {
		return 0
	}
	d := newDSU(len(blocks))
	for i, b := range blocks {
		for _, n := range neighboursOf(cfg, indirect, b.depth, b.idx) {
			lo, _ := qty.CellToRange[T](m.Quantity(), n.Depth, n.Idx)
			if j := owner(blocks, lo); j >= 0 {
				d.union(i, j)
			}
		}
	}
	roots := make(map[int]struct{})
	for i := range blocks {
		roots[d.find(i)] = struct{}{}
	}
	return len(roots)
}
