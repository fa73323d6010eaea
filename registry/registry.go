package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// Handle opaquely identifies one stored RangeMOC across a binding
// boundary (FFI, RPC, …).
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

type entry[T qty.Index, Q qty.Quantity] struct {
	moc      moc.RangeMOC[T, Q]
	refcount int
}

// Registry is a handle table for RangeMOC values of one (T, Q)
// instantiation. Bindings that juggle multiple Quantities keep one
// Registry per Quantity.
type Registry[T qty.Index, Q qty.Quantity] struct {
	mu      sync.RWMutex
	entries map[Handle]*entry[T, Q]
}

// New returns an empty Registry.
func New[T qty.Index, Q qty.Quantity]() *Registry[T, Q] {
	return &Registry[T, Q]{entries: make(map[Handle]*entry[T, Q])}
}

// Insert stores m under a freshly minted Handle with refcount 1.
func (r *Registry[T, Q]) Insert(m moc.RangeMOC[T, Q]) Handle {
	h := Handle(uuid.New())

	r.mu.Lock() // insertion and refcount init must be atomic w.r.t. concurrent Get/Retain
	defer r.mu.Unlock()
	r.entries[h] = &entry[T, Q]{moc: m, refcount: 1}
	return h
}

// Get returns the RangeMOC stored under h.
func (r *Registry[T, Q]) Get(h Handle) (moc.RangeMOC[T, Q], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[h]
	if !ok {
		var zero moc.RangeMOC[T, Q]
		return zero, ErrHandleNotFound
	}
	return e.moc, nil
}

// Retain increments h's refcount, for callers that hand the same handle
// to more than one owner.
func (r *Registry[T, Q]) Retain(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return ErrHandleNotFound
	}
	e.refcount++
	return nil
}

// Release decrements h's refcount, deleting the entry once it reaches
// zero.
func (r *Registry[T, Q]) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return ErrHandleNotFound
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(r.entries, h)
	}
	return nil
}

// Len reports the number of live handles.
func (r *Registry[T, Q]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
