package jsonmoc

import "errors"

// ErrMalformed is returned by Decode when the input is not a JSON object of
// depth-keyed arrays, a key is not a valid depth, or an array entry is not
// an integer or an "idx-idx" range string.
var ErrMalformed = errors.New("jsonmoc: malformed document")
