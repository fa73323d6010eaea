package fits_test

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/codec/fits"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

func buildMoc(t *testing.T) moc.RangeMOC[uint64, qty.Space] {
	t.Helper()
	cells := []qty.Cell{
		{Depth: 3, Idx: 4},
		{Depth: 3, Idx: 5},
		{Depth: 3, Idx: 6},
		{Depth: 3, Idx: 10},
	}
	m, err := moc.FromCells[uint64, qty.Space](qty.Space{}, 3, cells)
	require.NoError(t, err)
	return m
}

func TestEncodeDecodeRange_RoundTrip(t *testing.T) {
	m := buildMoc(t)

	var buf bytes.Buffer
	require.NoError(t, fits.EncodeRange(&buf, m, "gomoc-test"))
	assert.Equal(t, 0, buf.Len()%2880)

	back, err := fits.Decode[uint64, qty.Space](qty.Space{}, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.Equal(t, m.Ranges(), back.Ranges())
}

func TestEncodeDecodeUniq_RoundTrip(t *testing.T) {
	m := buildMoc(t)

	var buf bytes.Buffer
	require.NoError(t, fits.EncodeUniq(&buf, m, "gomoc-test"))

	back, err := fits.Decode[uint64, qty.Space](qty.Space{}, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.ElementsMatch(t, m.Uniqs(), back.Uniqs())
}

func TestDecode_GzipTransparent(t *testing.T) {
	m := buildMoc(t)

	var raw bytes.Buffer
	require.NoError(t, fits.EncodeRange(&raw, m, "gomoc-test"))

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	back, err := fits.Decode[uint64, qty.Space](qty.Space{}, bytes.NewReader(gz.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.Depth(), back.Depth())
	assert.Equal(t, m.Ranges(), back.Ranges())
}

func TestEncodeRange_EmptyMoc(t *testing.T) {
	m, err := moc.FromDepth[uint64, qty.Space](qty.Space{}, 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fits.EncodeRange(&buf, m, "gomoc-test"))

	back, err := fits.Decode[uint64, qty.Space](qty.Space{}, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, back.IsEmpty())
	assert.Equal(t, uint8(6), back.Depth())
}
