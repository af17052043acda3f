// SPDX-License-Identifier: MIT
//
// File: adjacency_matrix.go
// Role: Dense adjacency-matrix projection of a Graph.

package waypoint

// Matrix is a dense, square adjacency matrix indexed by waypoint ID.
//
// Description:
//
//	Cell m[i][j] holds the distance of the link i→j, or zero if none exists.
//	Rows and columns for IDs that are not members are all zero. The diagonal
//	is always zero.
type Matrix [][]float64

// AdjacencyMatrix projects the graph into a fresh Matrix.
//
// Algorithm:
//  1. Size = MaxID()+1 (0 for an empty graph).
//  2. Allocate a zero-filled Size×Size matrix backed by one contiguous slice.
//  3. For every member u and link u→v: m[u][v] = distance. Links whose
//     target lies outside the ID range are skipped.
//
// The result is recomputed on every call, so mutations are visible to the
// next call, and the caller owns it outright.
//
// Time Complexity: O(V² + E)
// Memory: O(V²)
func (g *Graph) AdjacencyMatrix() Matrix {
	size := g.MaxID() + 1
	backing := make([]float64, size*size)
	m := make(Matrix, size)
	for i := range m {
		m[i] = backing[i*size : (i+1)*size : (i+1)*size]
	}

	for _, u := range g.nodes {
		for v, d := range u.links {
			if v < 0 || v >= size {
				continue
			}
			m[u.id][v] = d
		}
	}

	return m
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int { return len(m) }

// At returns m[i][j], or 0 when either index is out of range.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m) || j >= len(m) {
		return 0
	}

	return m[i][j]
}

// HasEdge reports whether a traversable link i→j exists, i.e. m[i][j] > 0.
func (m Matrix) HasEdge(i, j int) bool { return m.At(i, j) > 0 }

// Symmetric reports whether m[i][j] == m[j][i] for every pair.
func (m Matrix) Symmetric() bool {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	size := len(m)
	backing := make([]float64, size*size)
	out := make(Matrix, size)
	for i := range m {
		out[i] = backing[i*size : (i+1)*size : (i+1)*size]
		copy(out[i], m[i])
	}

	return out
}
