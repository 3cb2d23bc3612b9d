// Package astar_test contains unit tests for the heuristic-guided
// search: reference street scenarios, the (nil, +Inf) contracts, option
// validation, heuristic substitution, and cost-equality with the
// uniform-cost baseline.
package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Powermatix/nawigacja-pag2/astar"
	"github.com/Powermatix/nawigacja-pag2/dijkstra"
	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// buildDiamond creates the 4-node diamond A–B=1, A–C=2, B–D=3, C–D=1
// (bidirectional) with coordinates A(0,0), B(1,1), C(1,-1), D(2,0).
// Optimal A→D is A,C,D with cost 3.
func buildDiamond() *streetmap.Graph {
	g := streetmap.New()
	g.AddNode("A", 0, 0, "A")
	g.AddNode("B", 1, 1, "B")
	g.AddNode("C", 1, -1, "C")
	g.AddNode("D", 2, 0, "D")
	_ = g.AddEdge("A", "B", 1.0)
	_ = g.AddEdge("A", "C", 2.0)
	_ = g.AddEdge("B", "D", 3.0)
	_ = g.AddEdge("C", "D", 1.0)

	return g
}

// buildCity recreates the six-location demo network with named streets;
// coordinates reflect the weights closely enough for Euclidean
// admissibility.
func buildCity() *streetmap.Graph {
	g := streetmap.New()
	g.AddNode("Home", 0, 0, "Home")
	g.AddNode("School", 2, 1, "School")
	g.AddNode("Store", 1, 2, "Store")
	g.AddNode("Park", 3, 3, "Park")
	g.AddNode("Library", 4, 1, "Library")
	g.AddNode("Hospital", 2, 4, "Hospital")
	_ = g.AddEdge("Home", "School", 2.5, streetmap.WithStreetName("Main Street"))
	_ = g.AddEdge("Home", "Store", 2.0, streetmap.WithStreetName("Oak Avenue"))
	_ = g.AddEdge("School", "Library", 2.0, streetmap.WithStreetName("Elm Street"))
	_ = g.AddEdge("Store", "School", 1.5, streetmap.WithStreetName("Park Road"))
	_ = g.AddEdge("Store", "Park", 2.5, streetmap.WithStreetName("Lake Drive"))
	_ = g.AddEdge("Store", "Hospital", 3.0, streetmap.WithStreetName("Center Street"))
	_ = g.AddEdge("Park", "Library", 2.0, streetmap.WithStreetName("Pine Avenue"))
	_ = g.AddEdge("Park", "Hospital", 1.5, streetmap.WithStreetName("River Road"))

	return g
}

func TestAStar_NilGraph(t *testing.T) {
	path, cost, err := astar.AStar(nil, "A", "B")
	require.ErrorIs(t, err, astar.ErrNilGraph)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

func TestAStar_UnknownEndpoints(t *testing.T) {
	g := buildDiamond()

	path, cost, err := astar.AStar(g, "Z", "D")
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))

	path, cost, err = astar.AStar(g, "A", "Z")
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

func TestAStar_StartEqualsGoal(t *testing.T) {
	g := buildDiamond()
	for _, k := range g.NodeIDs() {
		path, cost, err := astar.AStar(g, k, k)
		require.NoError(t, err)
		assert.Equal(t, []string{k}, path)
		assert.Equal(t, 0.0, cost)
	}
}

func TestAStar_UnreachableGoal(t *testing.T) {
	g := buildDiamond()
	g.AddNode("E", 10, 10, "E") // isolated

	path, cost, err := astar.AStar(g, "A", "E")
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

func TestAStar_Diamond(t *testing.T) {
	path, cost, err := astar.AStar(buildDiamond(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 3.0, cost)
	assert.Equal(t, []string{"A", "C", "D"}, path)
}

func TestAStar_ChainBeatsDirectEdge(t *testing.T) {
	g := streetmap.New()
	g.AddNode("Home", 0, 0, "Home")
	g.AddNode("Store", 1, 1, "Store")
	g.AddNode("Park", 2, 2, "Park")
	_ = g.AddEdge("Home", "Park", 4.0)
	_ = g.AddEdge("Home", "Store", 1.5)
	_ = g.AddEdge("Store", "Park", 2.0)

	path, cost, err := astar.AStar(g, "Home", "Park")
	require.NoError(t, err)
	assert.Equal(t, 3.5, cost)
	assert.Equal(t, []string{"Home", "Store", "Park"}, path)
}

// TestAStar_CostMatchesDijkstra checks the central property: with the
// admissible Euclidean heuristic both searches agree on cost for every
// (start, goal) pair, even where they may pick different optimal paths.
func TestAStar_CostMatchesDijkstra(t *testing.T) {
	for _, g := range []*streetmap.Graph{buildDiamond(), buildCity()} {
		ids := g.NodeIDs()
		for _, from := range ids {
			for _, to := range ids {
				_, wantCost, err := dijkstra.Dijkstra(g, from, to)
				require.NoError(t, err)
				_, gotCost, err := astar.AStar(g, from, to)
				require.NoError(t, err)
				assert.Equal(t, wantCost, gotCost, "cost mismatch for %s→%s", from, to)
			}
		}
	}
}

func TestAStar_ZeroHeuristicDegradesToDijkstra(t *testing.T) {
	// A zero estimate is trivially admissible; A* must then behave as
	// uniform-cost search, tie-breaks included.
	zero := func(_ *streetmap.Graph, _, _ string) float64 { return 0 }

	g := buildCity()
	wantPath, wantCost, err := dijkstra.Dijkstra(g, "Home", "Hospital")
	require.NoError(t, err)

	gotPath, gotCost, err := astar.AStar(g, "Home", "Hospital", astar.WithHeuristic(zero))
	require.NoError(t, err)
	assert.Equal(t, wantCost, gotCost)
	assert.Equal(t, wantPath, gotPath)
}

func TestAStar_MaxCostLimits(t *testing.T) {
	g := streetmap.New()
	_ = g.AddEdge("A", "B", 1.0)
	_ = g.AddEdge("B", "C", 1.0)
	_ = g.AddEdge("C", "D", 1.0)

	path, cost, err := astar.AStar(g, "A", "D", astar.WithMaxCost(2))
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

func TestAStar_OptionValidationPanics(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxCost(-1)(&astar.Options{}) })
	assert.Panics(t, func() { astar.WithHeuristic(nil)(&astar.Options{}) })
}

func TestEuclidean_MatchesGraphDistance(t *testing.T) {
	g := streetmap.New()
	g.AddNode("A", 0, 0, "")
	g.AddNode("B", 3, 4, "")

	assert.Equal(t, 5.0, astar.Euclidean(g, "A", "B"))
	assert.Equal(t, 0.0, astar.Euclidean(g, "A", "missing"))
}
