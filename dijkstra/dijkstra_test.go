// Package dijkstra_test contains unit tests for the dense Dijkstra solver:
// input validation, distance/parent state, tie-breaking and path rebuilding.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/waypoint"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptyMatrix(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptyMatrix)

	_, err = dijkstra.Dijkstra(waypoint.Matrix{})
	require.ErrorIs(t, err, dijkstra.ErrEmptyMatrix)
}

func TestDijkstra_NonSquare(t *testing.T) {
	m := waypoint.Matrix{{0, 1}, {1}}
	_, err := dijkstra.Dijkstra(m)
	require.ErrorIs(t, err, dijkstra.ErrNonSquareMatrix)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	m := waypoint.Matrix{{0, 1}, {1, 0}}
	_, err := dijkstra.Dijkstra(m, dijkstra.Source(2))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.Dijkstra(m, dijkstra.Source(-1))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	m := waypoint.Matrix{{0, -2}, {1, 0}}
	_, err := dijkstra.Dijkstra(m)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	m = waypoint.Matrix{{0, math.NaN()}, {1, 0}}
	_, err = dijkstra.Dijkstra(m)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_TriangleDistancesAndParents(t *testing.T) {
	// 0-1 (1), 1-2 (2), 0-2 (10)
	m := waypoint.Matrix{
		{0, 1, 10},
		{1, 0, 2},
		{10, 2, 0},
	}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 3}, tree.Dist)
	assert.Equal(t, []int{dijkstra.NoParent, 0, 1}, tree.Parent)
	assert.Equal(t, []int{0, 1, 2}, tree.PathTo(2))
	assert.Equal(t, 3.0, tree.DistanceTo(2))
}

func TestDijkstra_TieBreakLowestIndex(t *testing.T) {
	// Diamond 0-1-3 and 0-2-3, all weights 1: vertex 1 is finalised before 2.
	m := waypoint.Matrix{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, tree.PathTo(3))
}

func TestDijkstra_OneWayLinks(t *testing.T) {
	m := waypoint.Matrix{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}
	forward, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, forward.PathTo(2))

	backward, err := dijkstra.Dijkstra(m, dijkstra.Source(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, backward.PathTo(0), "no link back: degenerate path")
	assert.False(t, backward.Reached(0))
	assert.True(t, math.IsInf(backward.DistanceTo(0), 1))
}

func TestDijkstra_ZeroCellIsNoEdge(t *testing.T) {
	m := waypoint.Matrix{{0, 0}, {0, 0}}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tree.PathTo(1))
}

func TestDijkstra_SingleVertex(t *testing.T) {
	tree, err := dijkstra.Dijkstra(waypoint.Matrix{{0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tree.PathTo(0))
	assert.True(t, tree.Reached(0))
	assert.Zero(t, tree.DistanceTo(0))
}

func TestDijkstra_DoesNotMutateInput(t *testing.T) {
	m := waypoint.Matrix{{0, 2}, {2, 0}}
	orig := m.Clone()
	_, err := dijkstra.Dijkstra(m)
	require.NoError(t, err)
	assert.Equal(t, orig, m)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Chain 0-1-2-3 with unit weights.
	m := waypoint.Matrix{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.True(t, tree.Reached(2))
	assert.False(t, tree.Reached(3), "beyond the cap")
	assert.Equal(t, []int{0}, tree.PathTo(3))
}

func TestTree_PathToOutOfRange(t *testing.T) {
	tree, err := dijkstra.Dijkstra(waypoint.Matrix{{0, 1}, {1, 0}}, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, tree.PathTo(5))
	assert.Equal(t, []int{1}, tree.PathTo(-3))
	assert.False(t, tree.Reached(5))
}

func TestTree_Route(t *testing.T) {
	m := waypoint.Matrix{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Route{IDs: []int{0, 1}, Cost: 1, Found: true}, tree.Route(1))
	r := tree.Route(2)
	assert.Equal(t, []int{0}, r.IDs)
	assert.False(t, r.Found)
	assert.True(t, math.IsInf(r.Cost, 1))
}

func TestRouteOn(t *testing.T) {
	m := waypoint.Matrix{
		{0, 1, 10},
		{1, 0, 2},
		{10, 2, 0},
	}
	// start wins over a Source passed in opts
	r, err := dijkstra.RouteOn(m, 2, 0, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, r.IDs)
	assert.Equal(t, 3.0, r.Cost)

	r, err = dijkstra.RouteOn(m, 0, 2, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.False(t, r.Found)
	assert.Equal(t, []int{0}, r.IDs)

	_, err = dijkstra.RouteOn(m, 5, 0)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}
