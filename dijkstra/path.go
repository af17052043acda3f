// SPDX-License-Identifier: MIT

package dijkstra

import "math"

// Tree is the shortest-path tree produced by one Dijkstra run.
//
// Dist[v] is the shortest distance from Source to v (+Inf when unreachable).
// Parent[v] is v's predecessor on one shortest path, or NoParent for the
// source and for unreachable vertices.
type Tree struct {
	Source int
	Dist   []float64
	Parent []int
}

// PathTo reconstructs the vertex sequence Source → … → target.
//
// The walk follows Parent back from target until a vertex without a parent,
// collecting each vertex, then appends Source and reverses. Consequently:
//   - PathTo(Source) == [Source]
//   - an unreachable or out-of-range target yields [Source]
func (t *Tree) PathTo(target int) []int {
	if target < 0 || target >= len(t.Parent) {
		return []int{t.Source}
	}

	var rev []int
	for cur := target; t.Parent[cur] != NoParent; cur = t.Parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, t.Source)

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Reached reports whether target lies in the tree (the source counts).
func (t *Tree) Reached(target int) bool {
	if target < 0 || target >= len(t.Parent) {
		return false
	}

	return target == t.Source || t.Parent[target] != NoParent
}

// DistanceTo returns the shortest distance to target, or +Inf when it was not reached.
func (t *Tree) DistanceTo(target int) float64 {
	if !t.Reached(target) {
		return math.Inf(1)
	}

	return t.Dist[target]
}

// Route packs PathTo, DistanceTo and Reached for target into a Route.
func (t *Tree) Route(target int) Route {
	return Route{
		IDs:   t.PathTo(target),
		Cost:  t.DistanceTo(target),
		Found: t.Reached(target),
	}
}
