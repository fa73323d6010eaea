package ascii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/codec/ascii"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/moc2"
	"github.com/katalvlaran/gomoc/qty"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cells := []qty.Cell{
		{Depth: 3, Idx: 4},
		{Depth: 3, Idx: 5},
		{Depth: 3, Idx: 6},
		{Depth: 3, Idx: 10},
	}
	m, err := moc.FromCells[uint64, qty.Space](qty.Space{}, 3, cells)
	require.NoError(t, err)

	s := ascii.Encode(m)
	assert.Contains(t, s, "3/")

	back, err := ascii.Decode[uint64, qty.Space](qty.Space{}, s)
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.True(t, m.IntersectsMoc(back))
	assert.Equal(t, m.Ranges(), back.Ranges())
}

func TestEncode_EmptyMocHasBareTerminal(t *testing.T) {
	m, err := moc.FromDepth[uint64, qty.Space](qty.Space{}, 11)
	require.NoError(t, err)

	s := ascii.Encode(m)
	assert.Equal(t, "11/", s)

	back, err := ascii.Decode[uint64, qty.Space](qty.Space{}, s)
	require.NoError(t, err)
	assert.True(t, back.IsEmpty())
	assert.Equal(t, uint8(11), back.Depth())
}

func TestDecode_MissingTerminalFails(t *testing.T) {
	_, err := ascii.Decode[uint64, qty.Space](qty.Space{}, "3/4-6")
	assert.ErrorIs(t, err, ascii.ErrMalformed)
}

func TestDecode_MalformedTokenFails(t *testing.T) {
	_, err := ascii.Decode[uint64, qty.Space](qty.Space{}, "not-a-token 11/")
	assert.ErrorIs(t, err, ascii.ErrMalformed)
}

func TestDecode_CommaAndWhitespaceTolerant(t *testing.T) {
	m, err := ascii.Decode[uint64, qty.Space](qty.Space{}, "3/4-6,\n3/10 3/")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), m.Depth())
	lo, hi := qty.CellToRange[uint64](qty.Space{}, 3, 5)
	assert.True(t, m.ContainsValue(lo))
	assert.True(t, m.ContainsValue(hi-1))
}

func TestEncodeFolded_WrapsAtWidth(t *testing.T) {
	cells := []qty.Cell{{Depth: 3, Idx: 1}, {Depth: 3, Idx: 3}, {Depth: 3, Idx: 5}}
	m, err := moc.FromCells[uint64, qty.Space](qty.Space{}, 3, cells)
	require.NoError(t, err)

	folded := ascii.EncodeFolded(m, 10)
	for _, line := range splitLines(folded) {
		assert.LessOrEqual(t, len(line), 10)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func TestEncodeDecode2D_RoundTrip(t *testing.T) {
	outer, err := moc.FromCells[uint64, qty.Space](qty.Space{}, 3, []qty.Cell{{Depth: 3, Idx: 2}})
	require.NoError(t, err)
	inner, err := moc.FromCells[uint64, qty.Time](qty.Time{}, 10, []qty.Cell{{Depth: 10, Idx: 100}})
	require.NoError(t, err)

	m2 := moc2.New([]moc2.Element[uint64, qty.Space, uint64, qty.Time]{{Outer: outer, Inner: inner}})

	s := ascii.Encode2D(m2)
	back, err := ascii.Decode2D[uint64, qty.Space, uint64, qty.Time](qty.Space{}, qty.Time{}, s)
	require.NoError(t, err)
	require.Len(t, back.Elements(), 1)
	assert.Equal(t, outer.Depth(), back.Elements()[0].Outer.Depth())
	assert.Equal(t, inner.Depth(), back.Elements()[0].Inner.Depth())
}

func TestDecode2D_MissingSeparatorFails(t *testing.T) {
	_, err := ascii.Decode2D[uint64, qty.Space, uint64, qty.Time](qty.Space{}, qty.Time{}, "3/2 3/")
	assert.ErrorIs(t, err, ascii.ErrMalformed)
}
