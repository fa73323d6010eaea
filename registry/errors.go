package registry

import "errors"

// ErrHandleNotFound is returned by Get, Retain, and Release when a Handle
// names no live entry (never inserted, or already released to zero).
var ErrHandleNotFound = errors.New("registry: handle not found")
