package qty

// Quantity declares the static parameters of a one-dimensional discretized
// domain obtained by recursive subdivision: the maximum depth, the per-level
// shift factor and the base cell count at depth 0.
//
// Space uses a quad-tree subdivision (k=2, base=12 HEALPix base pixels).
// Time and Frequency use a bi-tree subdivision (k=1, base=1).
type Quantity interface {
	// MaxDepth returns D_max for this quantity.
	MaxDepth() uint8

	// K returns the per-level shift multiplier (2 for space, 1 otherwise).
	K() uint8

	// Base returns the cell count at depth 0 (12 for space, 1 otherwise).
	Base() uint64

	// Name returns a short human-readable tag, used in error messages and
	// codec headers (e.g. "SPACE", "TIME", "FREQUENCY").
	Name() string
}

// Space is the HEALPix NESTED quantity tag: Dmax=29, k=2, base=12.
type Space struct{}

func (Space) MaxDepth() uint8 { return 29 }
func (Space) K() uint8        { return 2 }
func (Space) Base() uint64    { return 12 }
func (Space) Name() string    { return "SPACE" }

// Time is the temporal quantity tag: Dmax=61, k=1, base=1.
type Time struct{}

func (Time) MaxDepth() uint8 { return 61 }
func (Time) K() uint8        { return 1 }
func (Time) Base() uint64    { return 1 }
func (Time) Name() string    { return "TIME" }

// Frequency is the spectral quantity tag: Dmax=59, k=1, base=1.
//
// Frequency MOCs have had at least one compatibility break upstream
// (fmin, fmax, number of orders); this module mirrors the latest choice:
// Dmax=59 with base=1, documented here per spec.md §9 open question.
type Frequency struct{}

func (Frequency) MaxDepth() uint8 { return 59 }
func (Frequency) K() uint8        { return 1 }
func (Frequency) Base() uint64    { return 1 }
func (Frequency) Name() string    { return "FREQUENCY" }

// Shift returns s(d) = k*(Dmax-d), the number of bits/units separating two
// consecutive indices at depth d in the deepest-level index space.
func Shift(q Quantity, d uint8) uint8 {
	return q.K() * (q.MaxDepth() - d)
}

// NMax returns n_max(d) = base * 2^(k*d), the exclusive upper bound on cell
// indices at depth d.
func NMax(q Quantity, d uint8) uint64 {
	return q.Base() << (uint64(q.K()) * uint64(d))
}

// ValidateDepth returns ErrInvalidDepth if d is outside [0, Dmax(q)].
func ValidateDepth(q Quantity, d uint8) error {
	if d > q.MaxDepth() {
		return ErrInvalidDepth
	}
	return nil
}

// ValidateIndex returns ErrIndexOutOfBounds if i >= nMax(d).
func ValidateIndex(q Quantity, d uint8, i uint64) error {
	if i >= NMax(q, d) {
		return ErrIndexOutOfBounds
	}
	return nil
}
