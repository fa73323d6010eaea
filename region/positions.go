package region

import (
	"fmt"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// FromPositions builds a RangeMOC from a list of point positions, each
// mapped to its deepest-level nested cell at depth and unioned.
func FromPositions[T qty.Index](depth uint8, positions []healpix.LonLat, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.FromPositions: %w", err)
	}
	if len(positions) == 0 {
		return zero, fmt.Errorf("region.FromPositions: %w", ErrNoPositions)
	}
	cfg := newConfig(opts...)
	cells := make([]qty.Cell, len(positions))
	for i, p := range positions {
		cells[i] = qty.Cell{Depth: depth, Idx: cfg.rasterizer.PositionToNested(depth, p)}
	}
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, cells)
	if err != nil {
		return zero, fmt.Errorf("region.FromPositions: %w", err)
	}
	return out, nil
}
