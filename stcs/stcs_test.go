package stcs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/stcs"
)

func TestEvaluate_Circle(t *testing.T) {
	n := stcs.Circle{Center: healpix.LonLat{Lon: 0, Lat: 0}, Radius: 0.1}
	m, err := stcs.Evaluate[uint64](4, n)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
}

func TestEvaluate_UnionOfTwoCircles(t *testing.T) {
	n := stcs.Union{Children: []stcs.Node{
		stcs.Circle{Center: healpix.LonLat{Lon: 0, Lat: 0}, Radius: 0.05},
		stcs.Circle{Center: healpix.LonLat{Lon: math.Pi, Lat: 0}, Radius: 0.05},
	}}
	m, err := stcs.Evaluate[uint64](4, n)
	require.NoError(t, err)

	a, err := stcs.Evaluate[uint64](4, n.Children[0])
	require.NoError(t, err)
	assert.True(t, m.ContainsMoc(a))
}

func TestEvaluate_IntersectionEmpty(t *testing.T) {
	n := stcs.Intersection{}
	_, err := stcs.Evaluate[uint64](4, n)
	assert.ErrorIs(t, err, stcs.ErrEmptyIntersection)
}

func TestEvaluate_DifferenceIsSymmetric(t *testing.T) {
	n := stcs.Difference{
		A: stcs.Circle{Center: healpix.LonLat{Lon: 0, Lat: 0}, Radius: 0.2},
		B: stcs.Circle{Center: healpix.LonLat{Lon: 0.1, Lat: 0}, Radius: 0.2},
	}
	reversed := stcs.Difference{A: n.B, B: n.A}

	m1, err := stcs.Evaluate[uint64](4, n)
	require.NoError(t, err)
	m2, err := stcs.Evaluate[uint64](4, reversed)
	require.NoError(t, err)
	assert.Equal(t, m1.Ranges(), m2.Ranges())
}

func TestValidateMeta(t *testing.T) {
	assert.NoError(t, stcs.ValidateMeta("ICRS", "Spher2", "degrees"))
	assert.ErrorIs(t, stcs.ValidateMeta("FK5", "Spher2", "degrees"), stcs.ErrUnsupportedFrame)
}
