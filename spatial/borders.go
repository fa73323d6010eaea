package spatial

import (
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

func neighboursOf(cfg *config, indirect bool, depth uint8, idx uint64) []qty.Cell {
	if indirect {
		return cfg.rasterizer.Neighbours8(depth, idx)
	}
	return cfg.rasterizer.Neighbours4(depth, idx)
}

// InternalBorder returns the cells of m that touch at least one
// non-covered neighbour — the "coastline" cells of the region, using
// Conn4 (direct) or Conn8 (indirect) adjacency.
func InternalBorder[T qty.Index](m moc.RangeMOC[T, qty.Space], indirect bool, opts ...Option) []qty.Cell {
	cfg := newConfig(opts...)
	blocks := blocksOf(m)
	var out []qty.Cell
	for _, b := range blocks {
		for _, n := range neighboursOf(cfg, indirect, b.depth, b.idx) {
			lo, _ := qty.CellToRange[T](m.Quantity(), n.Depth, n.Idx)
			if owner(blocks, lo) < 0 {
				out = append(out, qty.Cell{Depth: b.depth, Idx: b.idx})
				break
			}
		}
	}
	return out
}

// ExternalBorder returns the non-covered cells immediately outside m: for
// every internal-border block, its neighbours that are not covered by m,
// deduplicated.
func ExternalBorder[T qty.Index](m moc.RangeMOC[T, qty.Space], indirect bool, opts ...Option) []qty.Cell {
	cfg := newConfig(opts...)
	blocks := blocksOf(m)
	seen := make(map[uint64]struct{})
	var out []qty.Cell
	for _, b := range blocks {
		for _, n := range neighboursOf(cfg, indirect, b.depth, b.idx) {
			lo, _ := qty.CellToRange[T](m.Quantity(), n.Depth, n.Idx)
			if owner(blocks, lo) >= 0 {
				continue
			}
			key := uint64(n.Depth)<<58 | n.Idx
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// Extend grows m by n layers of external border, each layer computed
// against the previous iteration's result.
func Extend[T qty.Index](m moc.RangeMOC[T, qty.Space], n int, indirect bool, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	if n < 0 {
		return moc.RangeMOC[T, qty.Space]{}, ErrNegativeLayers
	}
	cur := m
	for i := 0; i < n; i++ {
		ring := ExternalBorder(cur, indirect, opts...)
		if len(ring) == 0 {
			break
		}
		added, err := moc.FromCells[T, qty.Space](cur.Quantity(), cur.Depth(), ring)
		if err != nil {
			return moc.RangeMOC[T, qty.Space]{}, err
		}
		cur = moc.Union(cur, added)
	}
	return cur, nil
}

// Contract shrinks m by n layers, each layer removing the current
// internal border.
func Contract[T qty.Index](m moc.RangeMOC[T, qty.Space], n int, indirect bool, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	if n < 0 {
		return moc.RangeMOC[T, qty.Space]{}, ErrNegativeLayers
	}
	cur := m
	for i := 0; i < n; i++ {
		if cur.IsEmpty() {
			break
		}
		border := InternalBorder(cur, indirect, opts...)
		if len(border) == 0 {
			break
		}
		removed, err := moc.FromCells[T, qty.Space](cur.Quantity(), cur.Depth(), border)
		if err != nil {
			return moc.RangeMOC[T, qty.Space]{}, err
		}
		cur = moc.Difference(cur, removed)
	}
	return cur, nil
}
