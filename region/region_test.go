package region

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCone_NonEmptyAndContainsCenter(t *testing.T) {
	center := healpix.LonLat{Lon: 1.0, Lat: 0.3}
	m, err := Cone[uint64](4, center, 0.2)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())

	idx := healpix.Reference{}.PositionToNested(4, center)
	lo, _ := qty.CellToRange[uint64](qty.Space{}, 4, idx)
	assert.True(t, m.ContainsValue(lo))
}

func TestCone_InvalidRadius(t *testing.T) {
	_, err := Cone[uint64](4, healpix.LonLat{}, 0)
	require.ErrorIs(t, err, ErrInvalidRadius)
}

func TestCone_InvalidDepth(t *testing.T) {
	_, err := Cone[uint64](30, healpix.LonLat{}, 0.1)
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestRing_InnerMustBeLessThanOuter(t *testing.T) {
	_, err := Ring[uint64](4, healpix.LonLat{}, 0.5, 0.2)
	require.ErrorIs(t, err, ErrInvalidRadius)
}

func TestPolygon_TooFewVertices(t *testing.T) {
	_, err := Polygon[uint64](4, []healpix.LonLat{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}, false)
	require.ErrorIs(t, err, ErrEmptyPolygon)
}

func TestFromPositions_Empty(t *testing.T) {
	_, err := FromPositions[uint64](4, nil)
	require.ErrorIs(t, err, ErrNoPositions)
}

func TestFromPositions_CoversEachPosition(t *testing.T) {
	positions := []healpix.LonLat{{Lon: 0.1, Lat: 0.1}, {Lon: 2.0, Lat: -0.5}}
	m, err := FromPositions[uint64](5, positions)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
	assert.GreaterOrEqual(t, m.NRanges(), 1)
}

func TestMultiCone_ContainsEachSequentialCone(t *testing.T) {
	centers := []healpix.LonLat{{Lon: 0.2, Lat: 0.2}, {Lon: 3.0, Lat: -0.4}, {Lon: 5.0, Lat: 0.1}}
	parallel, err := MultiCone[uint64](5, centers, 0.05, WithWorkers(4))
	require.NoError(t, err)

	for _, c := range centers {
		single, err := Cone[uint64](5, c, 0.05)
		require.NoError(t, err)
		assert.True(t, parallel.ContainsMoc(single))
	}
}

func TestMultiCone_EmptyCenters(t *testing.T) {
	_, err := MultiCone[uint64](5, nil, 0.05)
	require.ErrorIs(t, err, ErrNoPositions)
}

func TestFromValuedCells_DescendingAccumulatesHighestFirst(t *testing.T) {
	cells := []ValuedCell{
		{Cell: qty.Cell{Depth: 3, Idx: 1}, Value: 0.1},
		{Cell: qty.Cell{Depth: 3, Idx: 2}, Value: 0.5},
		{Cell: qty.Cell{Depth: 3, Idx: 3}, Value: 0.4},
	}
	m, err := FromValuedCells[uint64](3, cells, 0, 0.5, Descending, false, false, false)
	require.NoError(t, err)
	require.Equal(t, 1, len(m.Cells()))
	assert.Equal(t, uint64(2), m.Cells()[0].Idx)
}

func TestFromValuedCells_AscendingAccumulatesLowestFirst(t *testing.T) {
	cells := []ValuedCell{
		{Cell: qty.Cell{Depth: 3, Idx: 1}, Value: 0.1},
		{Cell: qty.Cell{Depth: 3, Idx: 2}, Value: 0.5},
		{Cell: qty.Cell{Depth: 3, Idx: 3}, Value: 0.4},
	}
	m, err := FromValuedCells[uint64](3, cells, 0, 0.2, Ascending, false, false, false)
	require.NoError(t, err)
	require.Equal(t, 1, len(m.Cells()))
	assert.Equal(t, uint64(1), m.Cells()[0].Idx)
}

func TestFromValuedCells_FromThresholdSkipsLowCells(t *testing.T) {
	cells := []ValuedCell{
		{Cell: qty.Cell{Depth: 3, Idx: 1}, Value: 0.5},
		{Cell: qty.Cell{Depth: 3, Idx: 2}, Value: 0.3},
		{Cell: qty.Cell{Depth: 3, Idx: 3}, Value: 0.2},
	}
	// Descending order: 0.5, 0.3, 0.2. Skip everything below cumulative 0.5,
	// so only the 0.3 cell (which crosses into [0.5, 0.8]) is selected.
	m, err := FromValuedCells[uint64](3, cells, 0.5, 0.8, Descending, false, false, false)
	require.NoError(t, err)
	require.Equal(t, 1, len(m.Cells()))
	assert.Equal(t, uint64(2), m.Cells()[0].Idx)
}

func TestFromValuedCells_SplitSubdividesBoundaryCell(t *testing.T) {
	cells := []ValuedCell{
		{Cell: qty.Cell{Depth: 3, Idx: 1}, Value: 0.9},
	}
	m, err := FromValuedCells[uint64](4, cells, 0, 0.3, Descending, true, true, false)
	require.NoError(t, err)
	// The single 0.9-valued cell exceeds the 0.3 ceiling on its own, so
	// split subdivides it into four 0.225-valued depth-4 children; strict
	// selection then takes exactly one of them before crossing 0.3.
	require.Equal(t, 1, len(m.Cells()))
	assert.Equal(t, uint8(4), m.Cells()[0].Depth)
}

func TestFromValuedCells_OverlappingCellsAreInconsistent(t *testing.T) {
	cells := []ValuedCell{
		{Cell: qty.Cell{Depth: 2, Idx: 1}, Value: 0.5},
		{Cell: qty.Cell{Depth: 3, Idx: 4}, Value: 0.5}, // a child of depth-2 idx 1
	}
	_, err := FromValuedCells[uint64](3, cells, 0, 1, Descending, false, false, false)
	require.ErrorIs(t, err, ErrInconsistentMap)
}

func TestFromKwFile_ParsesConeAndUnions(t *testing.T) {
	src := strings.NewReader("# comment\nCONE 5 0.1 0.1 0.05\nCONE 5 3.0 -0.4 0.05\n")
	m, err := FromKwFile[uint64](src)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
}

func TestFromKwFile_UnknownKeyword(t *testing.T) {
	src := strings.NewReader("BOGUS 1 2 3\n")
	_, err := FromKwFile[uint64](src)
	require.ErrorIs(t, err, ErrKwFile)
}
