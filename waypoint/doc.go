// SPDX-License-Identifier: MIT

// Package waypoint defines the Node and Graph types that model a navigable set
// of identified points joined by weighted, bidirectional connections.
//
// A Graph G = (V, E) here is small and dense by intent (tens to low hundreds
// of waypoints) and is consumed by the dijkstra package through its
// adjacency-matrix projection:
//
//   - Waypoints are identified by non-negative integers, unique per graph.
//   - A connection is a one-way, weighted link stored on the source node;
//     an undirected edge is two matching links (a→b and b→a).
//   - Graph.AddConnection keeps both directions in step; Node.AddConnection
//     writes a single raw link and is what format adapters use.
//   - Links are keyed by neighbour ID, never by pointer, so the graph acts as
//     an arena of nodes and no reference cycles form between siblings.
//
// Adjacency matrix:
//
//	The projection is sized (maxID+1)×(maxID+1). Cell [i][j] is the distance of
//	the link i→j, or 0 when no link exists. Gaps in the ID space leave whole
//	rows and columns at 0. A genuinely zero-length link is therefore
//	indistinguishable from "no link"; the solver treats it as absent.
//	The matrix is rebuilt on every call and never cached.
//
// Errors:
//
//	ErrNilNode         - a nil *Node was passed to AddWaypoint.
//	ErrNegativeID      - AddWaypoint with an ID below zero.
//	ErrDuplicateID     - AddWaypoint with an ID that is already present.
//	ErrUnknownNode     - AddConnection with an endpoint that is not a member.
//	ErrSelfConnection  - AddConnection with both endpoints on the same ID.
//	ErrBadDistance     - AddConnection with a negative, NaN or infinite distance.
//
// Every failing mutation leaves the graph unchanged.
//
// Concurrency:
//
//	Graph and Node hold no locks. Concurrent mutation without external
//	synchronisation is unsupported; see package navigator for a guarded
//	wrapper.
//
// Quick example:
//
//	g := waypoint.NewGraph()
//	a, b := waypoint.NewNode(0), waypoint.NewNode(1)
//	_ = g.AddWaypoint(a)
//	_ = g.AddWaypoint(b)
//	_ = g.AddConnection(a, b, 2.5)
//	m := g.AdjacencyMatrix() // m[0][1] == m[1][0] == 2.5
package waypoint
