// SPDX-License-Identifier: MIT

// Package waypath computes shortest routes over weighted waypoint graphs.
//
// The module is split into small packages:
//
//   - waypoint:  nodes, symmetric connections, and the dense adjacency matrix
//   - dijkstra:  the O(V²) matrix solver and the Solver facade returning routes
//   - table:     the "id;[neighbours];[distances]" text format
//   - graphio:   YAML documents, DOT export, and SVG rendering
//   - navigator: a lock-guarded graph that can be mutated while routes are served
//   - config:    TOML configuration with WAYPATH_* environment overrides
//
// Quick start:
//
//	g := waypoint.NewGraph()
//	a, b, c := waypoint.NewNode(0), waypoint.NewNode(1), waypoint.NewNode(2)
//	_ = g.AddWaypoint(a)
//	_ = g.AddWaypoint(b)
//	_ = g.AddWaypoint(c)
//	_ = g.AddConnection(a, b, 1)
//	_ = g.AddConnection(b, c, 2)
//
//	path, _ := dijkstra.FindPath(g, 0, 2) // [a b c]
//
// Unreachable targets yield the single-element path [start]; use
// Solver.Route when the caller needs to tell that apart from start == target.
//
// The waypath command (cmd/waypath) exposes the same operations on the
// command line: route, matrix, convert, and render.
package waypath
