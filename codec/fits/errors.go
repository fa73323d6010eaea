package fits

import "errors"

// ErrMalformed is returned when the input is not a well-formed FITS
// binary table extension, a required header key is missing, or TFORM
// names an unsupported column type.
var ErrMalformed = errors.New("fits: malformed document")

// ErrUnsupportedOrdering is returned when ORDERING is neither RANGE nor
// NUNIQ.
var ErrUnsupportedOrdering = errors.New("fits: unsupported ordering")
