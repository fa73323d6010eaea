package mocset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/mocset"
	"github.com/katalvlaran/gomoc/qty"
)

func buildMoc(t *testing.T, depth uint8, idxs ...uint64) moc.RangeMOC[uint64, qty.Space] {
	t.Helper()
	cells := make([]qty.Cell, len(idxs))
	for i, idx := range idxs {
		cells[i] = qty.Cell{Depth: depth, Idx: idx}
	}
	m, err := moc.FromCells[uint64, qty.Space](qty.Space{}, depth, cells)
	require.NoError(t, err)
	return m
}

func TestMakeAppendList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.moc")
	require.NoError(t, mocset.Make(path, 1))

	m1 := buildMoc(t, 3, 1, 2, 3)
	m2 := buildMoc(t, 5, 10, 20)
	require.NoError(t, mocset.Append(path, 100, m1))
	require.NoError(t, mocset.Append(path, 200, m2))

	listings, err := mocset.List(path)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, uint64(100), listings[0].ID)
	assert.Equal(t, uint8(3), listings[0].Depth)
	assert.Equal(t, mocset.StatusValid, listings[0].Status)
	assert.Equal(t, uint64(200), listings[1].ID)
}

func TestAppend_StoreFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.moc")
	// n128=1 => N=128 slots, 127 usable (slots 1..127).
	require.NoError(t, mocset.Make(path, 1))
	m := buildMoc(t, 3, 1)
	for i := 0; i < 127; i++ {
		require.NoError(t, mocset.Append(path, uint64(i), m))
	}
	err := mocset.Append(path, 999, m)
	assert.ErrorIs(t, err, mocset.ErrStoreFull)
}

func TestChgStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.moc")
	require.NoError(t, mocset.Make(path, 1))
	m := buildMoc(t, 3, 1, 2)
	require.NoError(t, mocset.Append(path, 42, m))

	require.NoError(t, mocset.ChgStatus(path, mocset.StatusDeprecated, 42))
	listings, err := mocset.List(path)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, mocset.StatusDeprecated, listings[0].Status)

	err = mocset.ChgStatus(path, mocset.StatusRemoved, 9999)
	assert.ErrorIs(t, err, mocset.ErrNotFound)
}

func TestQuery_FiltersByPredicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.moc")
	require.NoError(t, mocset.Make(path, 1))
	m1 := buildMoc(t, 3, 1, 2)
	m2 := buildMoc(t, 3, 50, 51)
	require.NoError(t, mocset.Append(path, 1, m1))
	require.NoError(t, mocset.Append(path, 2, m2))

	lo, _ := qty.CellToRange[uint64](qty.Space{}, 3, 1)
	ids, err := mocset.Query[uint64](path, qty.Space{}, func(m moc.RangeMOC[uint64, qty.Space]) bool {
		return m.ContainsValue(lo)
	}, mocset.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)
}

func TestPurge_DropsRemovedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.moc")
	require.NoError(t, mocset.Make(path, 1))
	m1 := buildMoc(t, 3, 1)
	m2 := buildMoc(t, 3, 2)
	require.NoError(t, mocset.Append(path, 1, m1))
	require.NoError(t, mocset.Append(path, 2, m2))
	require.NoError(t, mocset.ChgStatus(path, mocset.StatusRemoved, 1))

	require.NoError(t, mocset.Purge[uint64](path, qty.Space{}, 1))

	listings, err := mocset.List(path)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, uint64(2), listings[0].ID)
}
