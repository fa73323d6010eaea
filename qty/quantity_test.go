package qty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaceShiftAndNMax(t *testing.T) {
	var s Space
	assert.Equal(t, uint8(29), s.MaxDepth())
	assert.Equal(t, uint8(58), Shift(s, 0))
	assert.Equal(t, uint8(0), Shift(s, 29))
	assert.Equal(t, uint64(12), NMax(s, 0))
	assert.Equal(t, uint64(12*4), NMax(s, 1))
}

func TestValidateDepthAndIndex(t *testing.T) {
	var s Space
	assert.NoError(t, ValidateDepth(s, 29))
	assert.ErrorIs(t, ValidateDepth(s, 30), ErrInvalidDepth)
	assert.NoError(t, ValidateIndex(s, 0, 11))
	assert.ErrorIs(t, ValidateIndex(s, 0, 12), ErrIndexOutOfBounds)
}

func TestCellToRangeRoundTrip(t *testing.T) {
	var s Space
	lo, hi := CellToRange[uint64](s, 3, 7)
	assert.Equal(t, hi-lo, uint64(1)<<Shift(s, 3))
	assert.Equal(t, uint64(7), RangeToCell[uint64](s, 3, lo))
}

func TestUniq_MatchesWorkedFormula(t *testing.T) {
	// spec.md §3: UNIQ number (space) — encodes (d,i) as 4·4^d + i,
	// independent of Base() (12, the depth-0 HEALPix base-pixel count).
	var s Space
	assert.Equal(t, uint64(4), Uniq(s, 0, 0))
	assert.Equal(t, uint64(4+11), Uniq(s, 0, 11))
	assert.Equal(t, uint64(16), Uniq(s, 1, 0))
	assert.Equal(t, uint64(16+47), Uniq(s, 1, 47))
}

func TestUniqRoundTrip(t *testing.T) {
	var s Space
	for d := uint8(0); d < 5; d++ {
		for i := uint64(0); i < NMax(s, d) && i < 50; i++ {
			u := Uniq(s, d, i)
			c := UniqToCell(s, u)
			assert.Equal(t, d, c.Depth, "depth mismatch for u=%d", u)
			assert.Equal(t, i, c.Idx, "idx mismatch for u=%d", u)
		}
	}
}
