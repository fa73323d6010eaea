package stream

import "errors"

// ErrMalformed is returned when the preamble is missing or a line is not a
// valid `depth/idx[-idx]` token.
var ErrMalformed = errors.New("stream: malformed token")

// ErrQuantityMismatch is returned when the preamble's `qty=` name does not
// match the Quantity passed to Decode.
var ErrQuantityMismatch = errors.New("stream: quantity name mismatch")

// ErrOutOfOrder is returned when a cell's index does not strictly increase
// over the previous cell at the same depth, violating the format's
// ordering contract.
var ErrOutOfOrder = errors.New("stream: cells out of order")
