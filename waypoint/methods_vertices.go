// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Waypoint lifecycle & queries.
// Determinism:
//   - Waypoints() and IDs() follow insertion order.

package waypoint

import "fmt"

// AddWaypoint appends n to the graph.
//
// Implementation:
//   - Stage 1: Reject nil nodes (ErrNilNode) and negative IDs (ErrNegativeID).
//   - Stage 2: Reject IDs already present (ErrDuplicateID).
//   - Stage 3: Append to the ordered collection and record the ID.
//
// No connections are created. On error the graph is unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddWaypoint(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, n.id)
	}
	if _, exists := g.index[n.id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, n.id)
	}

	g.nodes = append(g.nodes, n)
	g.index[n.id] = n

	return nil
}

// RemoveWaypoint detaches n from the graph.
//
// Implementation:
//   - Stage 1: If n is nil or not the current member for its ID, return (no-op).
//   - Stage 2: Drop every link from another member that points at n.ID().
//   - Stage 3: Remove n from the ordered collection and the ID index.
//   - Stage 4: Clear n's own outgoing links; it no longer belongs to any graph.
//
// Removing a waypoint that is not present is not an error, unlike adding a
// duplicate. Insertion order of the remaining members is preserved.
//
// Complexity: O(V).
func (g *Graph) RemoveWaypoint(n *Node) {
	if !g.member(n) {
		return
	}

	kept := g.nodes[:0]
	for _, other := range g.nodes {
		if other == n {
			continue
		}
		other.RemoveConnection(n.id)
		kept = append(kept, other)
	}
	// Release the trailing slot so the removed node can be collected.
	g.nodes[len(kept)] = nil
	g.nodes = kept
	delete(g.index, n.id)

	for id := range n.links {
		delete(n.links, id)
	}
}

// Has reports whether a waypoint with the given ID is a member.
// Complexity: O(1).
func (g *Graph) Has(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Waypoint returns the member with the given ID.
func (g *Graph) Waypoint(id int) (*Node, bool) {
	n, ok := g.index[id]

	return n, ok
}

// Waypoints returns the members in insertion order.
// The slice is a copy; the nodes are shared with the graph.
func (g *Graph) Waypoints() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// IDs returns the member IDs in insertion order.
func (g *Graph) IDs() []int {
	ids := make([]int, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.id
	}

	return ids
}

// Len returns the number of member waypoints.
func (g *Graph) Len() int { return len(g.nodes) }

// MaxID returns the largest member ID, or -1 for an empty graph.
func (g *Graph) MaxID() int {
	max := -1
	for _, n := range g.nodes {
		if n.id > max {
			max = n.id
		}
	}

	return max
}

// member reports whether n is the node registered under its ID.
// Identity matters: a different *Node carrying the same ID is not a member.
func (g *Graph) member(n *Node) bool {
	if n == nil {
		return false
	}
	cur, ok := g.index[n.id]

	return ok && cur == n
}
