// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/waypath/waypoint"
)

// Route is the result of a Solver query.
//
// IDs keeps the contract of FindPath: [start] when the target is unreachable.
// Found reports reachability explicitly and Cost is the total path weight
// (+Inf when not found).
type Route struct {
	IDs   []int
	Cost  float64
	Found bool
}

// Solver answers path queries against a waypoint.Graph.
// It keeps a reference to the graph, not a copy: every query snapshots the
// adjacency matrix at call time.
type Solver struct {
	g    *waypoint.Graph
	opts []Option
}

// NewSolver binds a solver to g. Extra options (e.g. WithMaxDistance) apply
// to every query; Source is set per query and need not be given.
func NewSolver(g *waypoint.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Solver{g: g, opts: opts}, nil
}

// Route computes the shortest route from startID to endID.
//
// Steps:
//  1. Ensure both endpoints are members (ErrUnknownWaypoint).
//  2. Snapshot g.AdjacencyMatrix().
//  3. Run Dijkstra from startID and rebuild the path to endID.
func (s *Solver) Route(startID, endID int) (Route, error) {
	for _, id := range [2]int{startID, endID} {
		if !s.g.Has(id) {
			return Route{}, fmt.Errorf("%w: %d", ErrUnknownWaypoint, id)
		}
	}

	return RouteOn(s.g.AdjacencyMatrix(), startID, endID, s.opts...)
}

// RouteOn runs Dijkstra on m from start and returns the route to end.
// A Source among opts is overridden by start.
func RouteOn(m waypoint.Matrix, start, end int, opts ...Option) (Route, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Source(start))

	tree, err := Dijkstra(m, all...)
	if err != nil {
		return Route{}, err
	}

	return tree.Route(end), nil
}

// FindPath returns the waypoints along the shortest path from startID to endID.
//
// If endID is unreachable the result is the single-element slice [start];
// check the last element against endID to detect that case.
func (s *Solver) FindPath(startID, endID int) ([]*waypoint.Node, error) {
	r, err := s.Route(startID, endID)
	if err != nil {
		return nil, err
	}

	path := make([]*waypoint.Node, 0, len(r.IDs))
	for _, id := range r.IDs {
		n, ok := s.g.Waypoint(id)
		if !ok {
			// Only reachable through a link to a non-member, which Graph never creates.
			return nil, fmt.Errorf("%w: %d (dangling link)", ErrUnknownWaypoint, id)
		}
		path = append(path, n)
	}

	return path, nil
}

// FindPath is a one-shot helper: NewSolver(g) followed by FindPath.
func FindPath(g *waypoint.Graph, startID, endID int) ([]*waypoint.Node, error) {
	s, err := NewSolver(g)
	if err != nil {
		return nil, err
	}

	return s.FindPath(startID, endID)
}
