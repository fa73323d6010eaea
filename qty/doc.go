// Package qty defines the fixed-width index arithmetic shared by every
// Multi-Order Coverage quantity: Space (HEALPix NESTED), Time and Frequency.
//
// A Quantity is a tagged variant with three static parameters: the maximum
// admissible depth D_max, the per-level shift factor k (2 for space, 1 for
// time/frequency) and the base cell count at depth 0 (12 for space, 1
// otherwise). Every other package in this module is generic over a Quantity
// and an Index width (uint32 or uint64) and leans on the conversions defined
// here: cell<->range, uniq<->cell, and range decomposition into cells.
//
// Errors:
//
//	ErrInvalidDepth      - depth outside [0, Dmax] for the quantity.
//	ErrIndexOutOfBounds  - cell index >= nMax(depth).
package qty
