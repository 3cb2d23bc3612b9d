package astar_test

import (
	"fmt"
	"testing"

	"github.com/Powermatix/nawigacja-pag2/astar"
	"github.com/Powermatix/nawigacja-pag2/dijkstra"
	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// benchGrid builds an n×n Manhattan grid with unit streets, keys "x,y",
// coordinates matching the keys — the layout where the Euclidean
// heuristic pays off most.
func benchGrid(n int) *streetmap.Graph {
	g := streetmap.New()
	key := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.AddNode(key(x, y), float64(x), float64(y), "")
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				_ = g.AddEdge(key(x, y), key(x+1, y), 1.0)
			}
			if y+1 < n {
				_ = g.AddEdge(key(x, y), key(x, y+1), 1.0)
			}
		}
	}

	return g
}

// BenchmarkAStar_Grid measures a corner-to-corner query on a 50×50 unit
// grid with the default Euclidean heuristic.
func BenchmarkAStar_Grid(b *testing.B) {
	const n = 50
	g := benchGrid(n)
	goal := fmt.Sprintf("%d,%d", n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = astar.AStar(g, "0,0", goal)
	}
}

// BenchmarkAStar_GridVsDijkstra runs the uniform-cost baseline on the
// identical query for a side-by-side comparison in benchstat output.
func BenchmarkAStar_GridVsDijkstra(b *testing.B) {
	const n = 50
	g := benchGrid(n)
	goal := fmt.Sprintf("%d,%d", n-1, n-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, "0,0", goal)
	}
}
