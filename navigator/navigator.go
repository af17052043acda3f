// SPDX-License-Identifier: MIT

// Package navigator wraps a waypoint.Graph for callers that share one graph
// between goroutines.
//
// The waypoint and dijkstra packages hold no locks. Navigator puts a single
// sync.RWMutex at the integration boundary:
//
//   - mutations (AddWaypoint, RemoveWaypoint, Connect, Reset, Update) take the write lock;
//   - Route takes the read lock only to check endpoints and snapshot the
//     adjacency matrix, then solves outside the lock.
//
// A route is therefore computed against a consistent snapshot, and a long
// solve never blocks writers.
package navigator

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/waypoint"
)

// Navigator is a concurrency-safe facade over a waypoint graph.
type Navigator struct {
	mu     sync.RWMutex // guards g
	g      *waypoint.Graph
	logger *log.Logger
	solver []dijkstra.Option
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for debug tracing of mutations and queries.
func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) { n.logger = l }
}

// WithSolverOptions passes options (e.g. dijkstra.WithMaxDistance) to every query.
func WithSolverOptions(opts ...dijkstra.Option) Option {
	return func(n *Navigator) { n.solver = append(n.solver, opts...) }
}

// New takes ownership of g; callers must not touch g directly afterwards.
// A nil g starts from an empty graph.
func New(g *waypoint.Graph, opts ...Option) *Navigator {
	if g == nil {
		g = waypoint.NewGraph()
	}
	n := &Navigator{g: g, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddWaypoint creates and registers a waypoint with the given ID.
func (n *Navigator) AddWaypoint(id int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.g.AddWaypoint(waypoint.NewNode(id)); err != nil {
		return err
	}
	n.logger.Debug("waypoint added", "id", id, "count", n.g.Len())

	return nil
}

// RemoveWaypoint removes the waypoint with the given ID and reports whether it existed.
func (n *Navigator) RemoveWaypoint(id int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	node, ok := n.g.Waypoint(id)
	if !ok {
		return false
	}
	n.g.RemoveWaypoint(node)
	n.logger.Debug("waypoint removed", "id", id, "count", n.g.Len())

	return true
}

// Connect joins the waypoints a and b with an undirected edge.
// Unknown IDs yield waypoint.ErrUnknownNode.
func (n *Navigator) Connect(a, b int, distance float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	na, okA := n.g.Waypoint(a)
	nb, okB := n.g.Waypoint(b)
	if !okA || !okB {
		missing := a
		if okA {
			missing = b
		}

		return fmt.Errorf("%w: %d", waypoint.ErrUnknownNode, missing)
	}
	if err := n.g.AddConnection(na, nb, distance); err != nil {
		return err
	}
	n.logger.Debug("connected", "a", a, "b", b, "distance", distance)

	return nil
}

// Reset removes every waypoint and link, leaving an empty graph.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.g.Clear()
	n.logger.Debug("graph reset")
}

// Update runs fn with exclusive access to the graph, for batched mutations.
// fn must not retain g after returning.
func (n *Navigator) Update(fn func(g *waypoint.Graph) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return fn(n.g)
}

// Matrix returns a fresh adjacency-matrix snapshot.
func (n *Navigator) Matrix() waypoint.Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.g.AdjacencyMatrix()
}

// Snapshot returns a deep copy of the current graph.
func (n *Navigator) Snapshot() *waypoint.Graph {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.g.Clone()
}

// Len returns the current number of waypoints.
func (n *Navigator) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.g.Len()
}

// Route computes the shortest route between two waypoint IDs.
// Semantics match dijkstra.Solver.Route.
func (n *Navigator) Route(from, to int) (dijkstra.Route, error) {
	m, err := n.snapshot(from, to)
	if err != nil {
		return dijkstra.Route{}, err
	}

	r, err := dijkstra.RouteOn(m, from, to, n.solver...)
	if err != nil {
		return dijkstra.Route{}, err
	}
	n.logger.Debug("route", "from", from, "to", to, "found", r.Found, "hops", len(r.IDs)-1)

	return r, nil
}

// snapshot checks both endpoints and copies the matrix under one read lock.
func (n *Navigator) snapshot(from, to int) (waypoint.Matrix, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, id := range [2]int{from, to} {
		if !n.g.Has(id) {
			return nil, fmt.Errorf("%w: %d", dijkstra.ErrUnknownWaypoint, id)
		}
	}

	return n.g.AdjacencyMatrix(), nil
}
