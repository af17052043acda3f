// Package dijkstra_test provides examples for the waypoint shortest-path solver.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/waypoint"
)

// ExampleSolver_FindPath routes across a small patrol map where the direct
// corridor is longer than the detour.
//
//	[0]──1──[1]
//	  \      │
//	  10     2
//	    \    │
//	     ──[2]      [3] (isolated)
func ExampleSolver_FindPath() {
	g := waypoint.NewGraph()
	nodes := make([]*waypoint.Node, 4)
	for i := range nodes {
		nodes[i] = waypoint.NewNode(i)
		_ = g.AddWaypoint(nodes[i])
	}
	_ = g.AddConnection(nodes[0], nodes[1], 1)
	_ = g.AddConnection(nodes[1], nodes[2], 2)
	_ = g.AddConnection(nodes[0], nodes[2], 10)

	s, _ := dijkstra.NewSolver(g)
	path, _ := s.FindPath(0, 2)
	ids := make([]int, len(path))
	for i, n := range path {
		ids[i] = n.ID()
	}
	fmt.Println(ids)

	// Unreachable: only the start comes back.
	path, _ = s.FindPath(0, 3)
	fmt.Println(len(path), path[len(path)-1].ID() == 3)

	// Output:
	// [0 1 2]
	// 1 false
}

// ExampleDijkstra runs the solver directly on a matrix.
func ExampleDijkstra() {
	m := waypoint.Matrix{
		{0, 4, 1},
		{4, 0, 2},
		{1, 2, 0},
	}
	tree, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.PathTo(1), tree.DistanceTo(1))

	// Output: [0 2 1] 3
}

// ExampleSolver_Route shows the explicit Found flag.
func ExampleSolver_Route() {
	g := waypoint.NewGraph()
	a, b := waypoint.NewNode(0), waypoint.NewNode(1)
	_ = g.AddWaypoint(a)
	_ = g.AddWaypoint(b)

	s, _ := dijkstra.NewSolver(g)
	r, _ := s.Route(0, 1)
	fmt.Println(r.IDs, r.Found)

	// Output: [0] false
}
