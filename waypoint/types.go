// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph and sentinel errors, plus constructors.

package waypoint

import (
	"errors"
	"sort"
)

// Sentinel errors for waypoint graph operations.
var (
	// ErrNilNode indicates that a nil *Node was passed where a member was expected.
	ErrNilNode = errors.New("waypoint: node is nil")

	// ErrNegativeID indicates a waypoint ID below zero, which has no matrix row.
	ErrNegativeID = errors.New("waypoint: waypoint ID is negative")

	// ErrDuplicateID indicates that a waypoint with the same ID is already in the graph.
	ErrDuplicateID = errors.New("waypoint: duplicate waypoint ID")

	// ErrUnknownNode indicates that a connection endpoint is not a current member of the graph.
	ErrUnknownNode = errors.New("waypoint: node is not a member of the graph")

	// ErrSelfConnection indicates an attempt to connect a waypoint to itself.
	ErrSelfConnection = errors.New("waypoint: self-connection not allowed")

	// ErrBadDistance indicates a negative, NaN or infinite connection distance.
	ErrBadDistance = errors.New("waypoint: distance must be finite and non-negative")
)

// Node is a single waypoint.
//
// The ID is fixed at construction. links maps neighbour ID → distance of the one-way link n→neighbour.
type Node struct {
	id    int
	links map[int]float64
}

// NewNode returns a standalone waypoint with the given ID and no connections.
// Negative IDs are accepted here but cannot be projected into an adjacency
// matrix; the graph rejects them on insertion.
func NewNode(id int) *Node {
	return &Node{id: id, links: make(map[int]float64)}
}

// ID returns the waypoint identifier.
func (n *Node) ID() int { return n.id }

// AddConnection stores the one-way link n→to with the given distance,
// overwriting any previous distance for that neighbour.
//
// It performs no membership or symmetry checks: format adapters use it to load
// links exactly as written. Use Graph.AddConnection for undirected edges.
func (n *Node) AddConnection(to *Node, distance float64) {
	n.links[to.id] = distance
}

// RemoveConnection deletes the link n→id. Removing a missing link is a no-op.
func (n *Node) RemoveConnection(id int) {
	delete(n.links, id)
}

// HasConnection reports whether the link n→id exists.
func (n *Node) HasConnection(id int) bool {
	_, ok := n.links[id]

	return ok
}

// Distance returns the distance of the link n→id and whether it exists.
func (n *Node) Distance(id int) (float64, bool) {
	d, ok := n.links[id]

	return d, ok
}

// Connections returns the neighbour IDs of n sorted ascending.
func (n *Node) Connections() []int {
	ids := make([]int, 0, len(n.links))
	for id := range n.links {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the number of outgoing links.
func (n *Node) Degree() int { return len(n.links) }

// Graph owns an ordered collection of waypoints.
//
// nodes keeps insertion order, which is the canonical enumeration order.
// index maps a member ID to its Node and doubles as the duplicate check.
// Every link stored on a member refers to another current member.
type Graph struct {
	nodes []*Node
	index map[int]*Node
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{index: make(map[int]*Node)}
}
