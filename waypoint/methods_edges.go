// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Symmetric connection management on member waypoints.

package waypoint

import (
	"fmt"
	"math"
)

// AddConnection joins a and b with an undirected edge of the given distance,
// stored as the matched pair a→b and b→a.
//
// Steps:
//  1. Validate membership of both endpoints (ErrUnknownNode).
//  2. Reject a == b by ID (ErrSelfConnection).
//  3. Reject negative, NaN or infinite distances (ErrBadDistance).
//  4. If both directions already exist, return (idempotent no-op).
//  5. Create whichever direction is missing; an existing direction keeps its distance.
//
// On error the graph is unchanged.
//
// Complexity: O(1).
func (g *Graph) AddConnection(a, b *Node, distance float64) error {
	if !g.member(a) {
		return unknown(a)
	}
	if !g.member(b) {
		return unknown(b)
	}
	if a.id == b.id {
		return fmt.Errorf("%w: %d", ErrSelfConnection, a.id)
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return fmt.Errorf("%w: %d→%d distance=%v", ErrBadDistance, a.id, b.id, distance)
	}

	if !a.HasConnection(b.id) {
		a.AddConnection(b, distance)
	}
	if !b.HasConnection(a.id) {
		b.AddConnection(a, distance)
	}

	return nil
}

// Connected reports whether both directions a→b and b→a exist between the
// members with the given IDs.
func (g *Graph) Connected(a, b int) bool {
	na, okA := g.index[a]
	nb, okB := g.index[b]
	if !okA || !okB {
		return false
	}

	return na.HasConnection(b) && nb.HasConnection(a)
}

// ConnectionCount returns the number of one-way links stored across all members.
func (g *Graph) ConnectionCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.links)
	}

	return total
}

func unknown(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: <nil>", ErrUnknownNode)
	}

	return fmt.Errorf("%w: %d", ErrUnknownNode, n.id)
}
