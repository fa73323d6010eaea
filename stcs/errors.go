package stcs

import "errors"

var (
	// ErrEmptyIntersection is returned by Evaluate for an Intersection node
	// with no children.
	ErrEmptyIntersection = errors.New("stcs: intersection has no operands")
	// ErrUnsupportedNode is returned by Evaluate for a Node type outside
	// the closed set this package defines.
	ErrUnsupportedNode = errors.New("stcs: unsupported AST node")
	// ErrUnsupportedFrame is returned by ValidateMeta for any
	// frame/flavor/units combination outside ICRS/Spher2/degrees.
	ErrUnsupportedFrame = errors.New("stcs: unsupported frame, flavor, or units")
)
