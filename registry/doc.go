// Package registry is the in-process MOC handle store used by bindings:
// a map from opaque Handle to a reference-counted RangeMOC, guarded by a
// single RWMutex so that insertion and refcount updates are atomic with
// respect to concurrent callers.
package registry
