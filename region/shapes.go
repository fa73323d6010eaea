package region

import (
	"fmt"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

func validateDepth(d uint8) error {
	if err := qty.ValidateDepth(qty.Space{}, d); err != nil {
		return ErrInvalidDepth
	}
	return nil
}

// Cone builds a RangeMOC covering a disc of angular Radius radians around
// Center, rasterized at the given depth.
func Cone[T qty.Index](depth uint8, center healpix.LonLat, radius float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Cone: %w", err)
	}
	if radius <= 0 {
		return zero, fmt.Errorf("region.Cone: %w", ErrInvalidRadius)
	}
	cfg := newConfig(opts...)
	b := cfg.rasterizer.Cone(depth, center, radius)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, b.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Cone: %w", err)
	}
	return out, nil
}

// Ring builds a RangeMOC covering the annulus (InnerRadius, OuterRadius]
// around Center.
func Ring[T qty.Index](depth uint8, center healpix.LonLat, innerRadius, outerRadius float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Ring: %w", err)
	}
	if innerRadius < 0 || outerRadius <= innerRadius {
		return zero, fmt.Errorf("region.Ring: %w", ErrInvalidRadius)
	}
	cfg := newConfig(opts...)
	b := cfg.rasterizer.Ring(depth, center, innerRadius, outerRadius)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, b.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Ring: %w", err)
	}
	return out, nil
}

// Ellipse builds a RangeMOC covering an elliptical cone with semi-major A
// and semi-minor B (radians) rotated by positionAngle.
func Ellipse[T qty.Index](depth uint8, center healpix.LonLat, a, b, positionAngle float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Ellipse: %w", err)
	}
	if a <= 0 || b <= 0 {
		return zero, fmt.Errorf("region.Ellipse: %w", ErrInvalidRadius)
	}
	cfg := newConfig(opts...)
	bm := cfg.rasterizer.Ellipse(depth, center, a, b, positionAngle)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, bm.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Ellipse: %w", err)
	}
	return out, nil
}

// Box builds a RangeMOC covering a (possibly rotated) spherical box
// centered at Center with the given half-width/half-height (radians).
func Box[T qty.Index](depth uint8, center healpix.LonLat, halfWidth, halfHeight, positionAngle float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Box: %w", err)
	}
	cfg := newConfig(opts...)
	b := cfg.rasterizer.Box(depth, center, halfWidth, halfHeight, positionAngle)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, b.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Box: %w", err)
	}
	return out, nil
}

// Zone builds a RangeMOC covering a lon/lat rectangle with no rotation.
func Zone[T qty.Index](depth uint8, lonMin, lonMax, latMin, latMax float64, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Zone: %w", err)
	}
	cfg := newConfig(opts...)
	b := cfg.rasterizer.Zone(depth, lonMin, lonMax, latMin, latMax)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, b.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Zone: %w", err)
	}
	return out, nil
}

// Polygon builds a RangeMOC covering a (possibly self-intersecting;
// smallest-area interpretation) spherical polygon. complement inverts the
// selection (outside the polygon instead of inside).
func Polygon[T qty.Index](depth uint8, vertices []healpix.LonLat, complement bool, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	if err := validateDepth(depth); err != nil {
		return zero, fmt.Errorf("region.Polygon: %w", err)
	}
	if len(vertices) < 3 {
		return zero, fmt.Errorf("region.Polygon: %w", ErrEmptyPolygon)
	}
	cfg := newConfig(opts...)
	b := cfg.rasterizer.Polygon(depth, vertices, complement)
	out, err := moc.FromCells[T, qty.Space](qty.Space{}, depth, b.ToCells())
	if err != nil {
		return zero, fmt.Errorf("region.Polygon: %w", err)
	}
	return out, nil
}
