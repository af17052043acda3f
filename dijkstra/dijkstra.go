// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/waypoint"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of
// the adjacency matrix m and returns them as a shortest-path Tree.
//
// Preconditions and validation (in order):
//  1. m must have at least one row (ErrEmptyMatrix).
//  2. m must be square (ErrNonSquareMatrix).
//  3. Source must be in [0, size) (ErrSourceOutOfRange).
//  4. No cell may be negative or NaN (ErrNegativeWeight).
//
// m is only read; the returned Tree does not alias it.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V)
func Dijkstra(m waypoint.Matrix, opts ...Option) (*Tree, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate shape and source
	n := len(m)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Pre-scan for negative weights, fail fast
	for i, row := range m {
		for j, w := range row {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, i, j, w)
			}
		}
	}

	// 4) Run
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]float64, n),
		parent:  make([]int, n),
		done:    make([]bool, n),
	}
	r.init()
	r.process()

	return &Tree{Source: cfg.Source, Dist: r.dist, Parent: r.parent}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       waypoint.Matrix // read-only snapshot
	options Options
	dist    []float64 // best-known distance per vertex
	parent  []int     // predecessor per vertex, NoParent if none
	done    []bool    // finalised vertices
}

// init sets every distance to +Inf and every parent to NoParent, then dist[src]=0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.parent[v] = NoParent
	}
	r.dist[r.options.Source] = 0
}

// process runs size-1 selection rounds. A round with no finite candidate left
// means every remaining vertex is unreachable, so the rest would be no-ops.
func (r *runner) process() {
	for round := 1; round < len(r.m); round++ {
		u := r.nearest()
		if u == NoParent {
			return
		}
		if r.dist[u] > r.options.MaxDistance {
			return
		}
		r.done[u] = true
		r.relax(u)
	}
}

// nearest returns the non-finalised vertex with the smallest finite distance.
// The strict comparison keeps the first (lowest-index) vertex on ties.
func (r *runner) nearest() int {
	best, idx := math.Inf(1), NoParent
	for v, d := range r.dist {
		if !r.done[v] && d < best {
			best, idx = d, v
		}
	}

	return idx
}

// relax tries to improve every vertex through the freshly finalised u.
func (r *runner) relax(u int) {
	row := r.m[u]
	for v, w := range row {
		// Diagonal is never consulted; zero means "no edge".
		if v == u || w <= 0 || r.done[v] {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance {
			continue
		}
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.parent[v] = u
		}
	}
}
