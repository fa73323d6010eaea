package stcs

import "github.com/katalvlaran/gomoc/healpix"

// Node is the closed set of STC-S AST node kinds this package can evaluate.
// An external parser is responsible for producing a Node tree from STC-S
// text; this package never tokenizes STC-S itself.
type Node interface{ isNode() }

// Circle is the STC-S Circle shape (a cone).
type Circle struct {
	Center healpix.LonLat
	Radius float64
}

// Polygon is the STC-S Polygon shape. Complement inverts the selection.
type Polygon struct {
	Vertices   []healpix.LonLat
	Complement bool
}

// Box is the STC-S Box shape, with the optional position-angle extension.
type Box struct {
	Center                healpix.LonLat
	HalfWidth, HalfHeight float64
	PositionAngle         float64
}

// Ellipse is the STC-S Ellipse shape.
type Ellipse struct {
	Center        healpix.LonLat
	A, B          float64
	PositionAngle float64
}

// Ring is the STC-S Ring (annulus) shape.
type Ring struct {
	Center                   healpix.LonLat
	InnerRadius, OuterRadius float64
}

// Zone is the STC-S Zone (lon/lat bounding box) shape.
type Zone struct {
	LonMin, LonMax, LatMin, LatMax float64
}

// Union is the STC-S UNION operator over one or more children.
type Union struct{ Children []Node }

// Intersection is the STC-S INTERSECTION operator over one or more children.
type Intersection struct{ Children []Node }

// Not is the STC-S NOT operator.
type Not struct{ Child Node }

// Difference is the STC-S DIFFERENCE operator, evaluated as symmetric
// difference (a documented deviation from the text standard).
type Difference struct{ A, B Node }

func (Circle) isNode()       {}
func (Polygon) isNode()      {}
func (Box) isNode()          {}
func (Ellipse) isNode()      {}
func (Ring) isNode()         {}
func (Zone) isNode()         {}
func (Union) isNode()        {}
func (Intersection) isNode() {}
func (Not) isNode()          {}
func (Difference) isNode()   {}

// ValidateMeta rejects any STC-S frame/flavor/units outside the accepted
// subset (ICRS, Spher2, degrees).
func ValidateMeta(frame, flavor, units string) error {
	if frame != "ICRS" || flavor != "Spher2" || units != "degrees" {
		return ErrUnsupportedFrame
	}
	return nil
}
