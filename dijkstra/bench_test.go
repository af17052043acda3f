package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/waypoint"
)

// randomGraph builds n waypoints with roughly density·n² undirected edges.
func randomGraph(n int, density float64, seed int64) *waypoint.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := waypoint.NewGraph()
	nodes := make([]*waypoint.Node, n)
	for i := range nodes {
		nodes[i] = waypoint.NewNode(i)
		_ = g.AddWaypoint(nodes[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				_ = g.AddConnection(nodes[i], nodes[j], 1+rng.Float64()*9)
			}
		}
	}

	return g
}

// BenchmarkDijkstra_Dense measures one solve over a 200-vertex matrix.
func BenchmarkDijkstra_Dense(b *testing.B) {
	m := randomGraph(200, 0.3, 1).AdjacencyMatrix()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(m, dijkstra.Source(0))
	}
}

// BenchmarkSolver_Route includes the matrix projection done per query.
func BenchmarkSolver_Route(b *testing.B) {
	g := randomGraph(100, 0.1, 2)
	s, _ := dijkstra.NewSolver(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Route(0, 99)
	}
}
