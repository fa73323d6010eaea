// Package region: sentinel errors.
//
// ERROR PRIORITY (tie-break guidance when multiple validations could
// apply): ErrInvalidDepth is checked before any shape-specific parameter
// validation, mirroring the depth-then-shape ordering moc's constructors
// already use.
package region

import "errors"

var (
	// ErrInvalidDepth is returned when the requested depth exceeds
	// qty.Space{}.MaxDepth().
	ErrInvalidDepth = errors.New("region: invalid depth")

	// ErrEmptyPolygon is returned by Polygon when fewer than 3 vertices
	// are given.
	ErrEmptyPolygon = errors.New("region: polygon needs at least 3 vertices")

	// ErrInvalidRadius is returned when a cone/ring/ellipse radius is
	// not strictly positive, or a ring's inner radius exceeds its outer.
	ErrInvalidRadius = errors.New("region: invalid radius")

	// ErrNoPositions is returned by FromPositions/MultiCone when the
	// input position list is empty.
	ErrNoPositions = errors.New("region: empty position list")

	// ErrKwFile is returned by FromKwFile on a malformed keyword line.
	ErrKwFile = errors.New("region: malformed keyword file line")

	// ErrInconsistentMap is returned by FromValuedCells when two input
	// cells' ranges overlap (e.g. a cell and one of its own descendants
	// both appear in the map).
	ErrInconsistentMap = errors.New("region: inconsistent multi-order value map")
)
