package healpix

import "github.com/katalvlaran/gomoc/qty"

// LonLat is a spherical position in radians: Lon in [0, 2pi), Lat in
// [-pi/2, pi/2].
type LonLat struct{ Lon, Lat float64 }

// Rasterizer is the narrow interface the core calls into for HEALPix
// NESTED primitives: rasterizing geometric regions to a BMOC, mapping a
// position to its deepest-level nested index, and enumerating a cell's
// 4- or 8-neighbourhood. The real bit-accurate pixelization math (and any
// performance-tuned implementation) is an external collaborator per
// spec.md §1; Reference below is a simplified, self-consistent stand-in
// good enough to exercise the engine end-to-end.
type Rasterizer interface {
	// Cone rasterizes a disc of angular Radius (radians) around Center to
	// a BMOC at depth d.
	Cone(d uint8, center LonLat, radius float64) BMOC

	// Polygon rasterizes a (possibly self-intersecting; smallest-area
	// interpretation, spec.md §9) spherical polygon to a BMOC at depth d.
	Polygon(d uint8, vertices []LonLat, complement bool) BMOC

	// Box rasterizes an axis-aligned (in lon/lat, optionally rotated by a
	// position angle) spherical box to a BMOC at depth d.
	Box(d uint8, center LonLat, halfWidth, halfHeight, positionAngle float64) BMOC

	// Zone rasterizes a lon/lat rectangle (no position angle) to a BMOC.
	Zone(d uint8, lonMin, lonMax, latMin, latMax float64) BMOC

	// Ring rasterizes an annulus (innerRadius, outerRadius] around Center.
	Ring(d uint8, center LonLat, innerRadius, outerRadius float64) BMOC

	// Ellipse rasterizes an elliptical cone: semi-major A, semi-minor B
	// (radians), position angle in radians.
	Ellipse(d uint8, center LonLat, a, b, positionAngle float64) BMOC

	// PositionToNested returns the deepest-level (depth d) nested index
	// covering the given position.
	PositionToNested(d uint8, pos LonLat) uint64

	// Neighbours4 returns the (depth, index) cells sharing an edge with
	// (d, i) (N, S, E, W).
	Neighbours4(d uint8, i uint64) []qty.Cell

	// Neighbours8 returns Neighbours4 plus the four corner-adjacent
	// cells.
	Neighbours8(d uint8, i uint64) []qty.Cell
}
