package spatial

import "errors"

var (
	// ErrNegativeLayers is returned by Extend/Contract when n < 0.
	ErrNegativeLayers = errors.New("spatial: layer count must be non-negative")
)
