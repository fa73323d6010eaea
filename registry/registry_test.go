package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/registry"
)

func TestInsertGet(t *testing.T) {
	reg := registry.New[uint64, qty.Space]()
	m, err := moc.FromCells[uint64, qty.Space](qty.Space{}, 3, []qty.Cell{{Depth: 3, Idx: 1}})
	require.NoError(t, err)

	h := reg.Insert(m)
	got, err := reg.Get(h)
	require.NoError(t, err)
	assert.Equal(t, m.Ranges(), got.Ranges())
	assert.Equal(t, 1, reg.Len())
}

func TestRetainRelease_RefcountsToZero(t *testing.T) {
	reg := registry.New[uint64, qty.Space]()
	m, err := moc.FromDepth[uint64, qty.Space](qty.Space{}, 3)
	require.NoError(t, err)

	h := reg.Insert(m)
	require.NoError(t, reg.Retain(h))

	require.NoError(t, reg.Release(h))
	assert.Equal(t, 1, reg.Len())

	require.NoError(t, reg.Release(h))
	assert.Equal(t, 0, reg.Len())

	_, err = reg.Get(h)
	assert.ErrorIs(t, err, registry.ErrHandleNotFound)
}

func TestGet_UnknownHandle(t *testing.T) {
	reg := registry.New[uint64, qty.Space]()
	_, err := reg.Get(registry.Handle{})
	assert.ErrorIs(t, err, registry.ErrHandleNotFound)
}
