// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over the dense
// adjacency-matrix projection of a waypoint.Graph.
//
// Overview:
//
//   - The solver reads a waypoint.Matrix snapshot, never the live graph, so
//     later graph mutations do not affect an in-flight or returned result.
//   - It is the classic O(V²) array form of Dijkstra's algorithm: no heap,
//     which is the right trade-off for small dense waypoint graphs.
//   - Each query recomputes from scratch; there is no incremental update.
//
// Algorithm:
//
//  1. dist[v] = +Inf, parent[v] = NoParent for every v in [0, size); dist[src] = 0.
//  2. Repeat size-1 times:
//     a. pick the non-finalised vertex u with the smallest finite dist;
//     ties go to the lowest index. If none is left, stop early.
//     b. finalise u.
//     c. for every v with m[u][v] > 0 and dist[u]+m[u][v] < dist[v]:
//     dist[v] = dist[u]+m[u][v], parent[v] = u.
//  3. Rebuild a path by walking parent links back from the target.
//
// Zero cells are "no edge". A genuinely zero-length link therefore cannot be
// traversed; this is inherited from the matrix encoding and intentional.
//
// Unreachable targets:
//
//	Tree.PathTo and Solver.FindPath return the one-element path [start] when
//	the target cannot be reached. Callers detect this by checking whether the
//	last element equals the requested target, or use Solver.Route whose
//	Found flag reports it explicitly.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyMatrix:      the matrix has no rows.
//   - ErrNonSquareMatrix:  a row length differs from the row count.
//   - ErrSourceOutOfRange: the source index is outside [0, size).
//   - ErrNegativeWeight:   a cell is negative or NaN (O(V²) pre-scan, fail fast).
//   - ErrBadMaxDistance:   WithMaxDistance was given a negative or NaN value (panic).
//   - ErrNilGraph:         NewSolver was given a nil graph.
//   - ErrUnknownWaypoint:  FindPath/Route start or end is not a graph member.
//
// Thread safety:
//
//   - Dijkstra is a pure function of its matrix argument.
//   - Solver reads its graph without locking; see package navigator when the
//     graph is shared between goroutines.
package dijkstra
