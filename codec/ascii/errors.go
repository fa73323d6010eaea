package ascii

import "errors"

// ErrMalformed is returned by Decode when a token does not match the
// `depth/idx[-idx]` grammar, or the stream has no terminal bare-depth
// token.
var ErrMalformed = errors.New("ascii: malformed token")
