package stream_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/codec/stream"
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

	var buf strings.Builder
	require.NoError(t, stream.Encode(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "qty=SPACE\ndepth=3\n"))

	back, err := stream.Decode[uint64, qty.Space](qty.Space{}, strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.Equal(t, m.Ranges(), back.Ranges())
}

func TestDecode_QuantityMismatch(t *testing.T) {
	in := "qty=TIME\ndepth=5\n5/1\n"
	_, err := stream.Decode[uint64, qty.Space](qty.Space{}, strings.NewReader(in))
	assert.ErrorIs(t, err, stream.ErrQuantityMismatch)
}

func TestDecode_OutOfOrderFails(t *testing.T) {
	in := "qty=SPACE\ndepth=3\n3/10\n3/4\n"
	_, err := stream.Decode[uint64, qty.Space](qty.Space{}, strings.NewReader(in))
	assert.ErrorIs(t, err, stream.ErrOutOfOrder)
}

func TestDecode_MissingPreambleFails(t *testing.T) {
	_, err := stream.Decode[uint64, qty.Space](qty.Space{}, strings.NewReader("3/1\n"))
	assert.ErrorIs(t, err, stream.ErrMalformed)
}

func TestEncode_EmptyMoc(t *testing.T) {
	m, err := moc.FromDepth[uint64, qty.Space](qty.Space{}, 7)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, stream.Encode(&buf, m))
	assert.Equal(t, "qty=SPACE\ndepth=7\n", buf.String())

	back, err := stream.Decode[uint64, qty.Space](qty.Space{}, strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.True(t, back.IsEmpty())
}
