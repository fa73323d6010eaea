package stcs

import (
	"fmt"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/region"
)

// Evaluate walks an STC-S AST node and returns the RangeMOC it denotes,
// rasterized at depth. Composite nodes recurse and combine their
// children's MOCs with the moc operator algebra.
func Evaluate[T qty.Index](depth uint8, n Node, opts ...region.Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]

	switch v := n.(type) {
	case Circle:
		m, err := region.Cone[T](depth, v.Center, v.Radius, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Polygon:
		m, err := region.Polygon[T](depth, v.Vertices, v.Complement, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Box:
		m, err := region.Box[T](depth, v.Center, v.HalfWidth, v.HalfHeight, v.PositionAngle, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Ellipse:
		m, err := region.Ellipse[T](depth, v.Center, v.A, v.B, v.PositionAngle, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Ring:
		m, err := region.Ring[T](depth, v.Center, v.InnerRadius, v.OuterRadius, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Zone:
		m, err := region.Zone[T](depth, v.LonMin, v.LonMax, v.LatMin, v.LatMax, opts...)
		if err != nil {
			return zero, fmt.Errorf("stcs.Evaluate: %w", err)
		}
		return m, nil

	case Union:
		if len(v.Children) == 0 {
			return moc.FromDepth[T, qty.Space](qty.Space{}, depth)
		}
		results := make([]moc.RangeMOC[T, qty.Space], 0, len(v.Children))
		for _, c := range v.Children {
			m, err := Evaluate[T](depth, c, opts...)
			if err != nil {
				return zero, err
			}
			results = append(results, m)
		}
		return moc.UnionAll(results), nil

	case Intersection:
		if len(v.Children) == 0 {
			return zero, ErrEmptyIntersection
		}
		acc, err := Evaluate[T](depth, v.Children[0], opts...)
		if err != nil {
			return zero, err
		}
		for _, c := range v.Children[1:] {
			m, err := Evaluate[T](depth, c, opts...)
			if err != nil {
				return zero, err
			}
			acc = moc.Intersection(acc, m)
		}
		return acc, nil

	case Not:
		m, err := Evaluate[T](depth, v.Child, opts...)
		if err != nil {
			return zero, err
		}
		return moc.Not(m), nil

	case Difference:
		a, err := Evaluate[T](depth, v.A, opts...)
		if err != nil {
			return zero, err
		}
		b, err := Evaluate[T](depth, v.B, opts...)
		if err != nil {
			return zero, err
		}
		return moc.SymmetricDifference(a, b), nil

	default:
		return zero, ErrUnsupportedNode
	}
}
