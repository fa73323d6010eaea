package rangeset

import "errors"

// ErrNotNormalized names a violated pre-normalized input precondition
// (sorted, disjoint, non-touching). No function in this package returns
// it; IsNormalized reports the condition as a bool.
var ErrNotNormalized = errors.New("rangeset: input is not normalized")
