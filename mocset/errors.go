package mocset

import "errors"

// ERROR PRIORITY: ErrStoreFull and ErrNotFound are checked before any
// lower-level I/O error is wrapped and returned, so callers can branch on
// them with errors.Is without also matching a wrapped os.PathError.
var (
	// ErrStoreFull is returned by Append when no Free metadata slot remains.
	ErrStoreFull = errors.New("mocset: store has no free slot")
	// ErrNotFound is returned by ChgStatus when no slot matches any of the
	// requested identifiers. Query returns an empty id list instead.
	ErrNotFound = errors.New("mocset: identifier not found")
	// ErrCorruptHeader is returned when slot 0 does not hold a positive
	// slot count. The cumulative index is not checked against the file's
	// actual size.
	ErrCorruptHeader = errors.New("mocset: corrupt header")
)
