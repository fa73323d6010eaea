package jsonmoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/codec/jsonmoc"
	"github.com/katalvlaran/gomoc/moc"
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

	s := jsonmoc.Encode(m)
	assert.Contains(t, s, `"3":`)

	back, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, s)
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.Equal(t, m.Ranges(), back.Ranges())
}

func TestEncode_EmptyMocHasDeclaredDepthKey(t *testing.T) {
	m, err := moc.FromDepth[uint64, qty.Space](qty.Space{}, 9)
	require.NoError(t, err)

	s := jsonmoc.Encode(m)
	assert.Equal(t, `{"9":[]}`, s)

	back, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, s)
	require.NoError(t, err)
	assert.True(t, back.IsEmpty())
	assert.Equal(t, uint8(9), back.Depth())
}

func TestDecode_MultipleDepthBucketsAndDeclaredDepthIsMax(t *testing.T) {
	m, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, `{"2":[1,2],"4":[10,"20-22"]}`)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), m.Depth())
	assert.False(t, m.IsEmpty())
}

func TestDecode_MalformedKeyFails(t *testing.T) {
	_, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, `{"x":[1]}`)
	assert.ErrorIs(t, err, jsonmoc.ErrMalformed)
}

func TestDecode_MalformedElementFails(t *testing.T) {
	_, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, `{"3":[true]}`)
	assert.ErrorIs(t, err, jsonmoc.ErrMalformed)
}

func TestDecode_NotAnObjectFails(t *testing.T) {
	_, err := jsonmoc.Decode[uint64, qty.Space](qty.Space{}, `[1,2,3]`)
	assert.ErrorIs(t, err, jsonmoc.ErrMalformed)
}
