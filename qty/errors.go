// SPDX-License-Identifier: MIT
// Package qty: sentinel error set.
// Every message is prefixed with "qty: ..." for consistency and easy
// grepping across logs, mirroring the matrix package's error discipline.
package qty

import "errors"

var (
	// ErrInvalidDepth is returned when a requested depth is outside [0, Dmax(Q)].
	ErrInvalidDepth = errors.New("qty: invalid depth")

	// ErrIndexOutOfBounds is returned when a cell index is >= nMax(depth).
	ErrIndexOutOfBounds = errors.New("qty: index out of bounds")
)
