// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// NoParent marks a vertex without a predecessor: the source itself, or any
// vertex that was never reached.
const NoParent = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("dijkstra: adjacency matrix is empty")

	// ErrNonSquareMatrix indicates a matrix whose rows do not all have size columns.
	ErrNonSquareMatrix = errors.New("dijkstra: adjacency matrix is not square")

	// ErrSourceOutOfRange indicates a source index outside the matrix.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative (or NaN) cell was detected in the matrix.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilGraph indicates that a nil *waypoint.Graph was given to NewSolver.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownWaypoint indicates a route endpoint that is not a graph member.
	ErrUnknownWaypoint = errors.New("dijkstra: waypoint not found in graph")
)

// Options configures a Dijkstra run.
//
// Source      – index of the starting vertex (must be in range).
// MaxDistance – vertices whose distance would exceed this value are neither
//
//	finalised nor relaxed. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      int     // index of the source vertex
	MaxDistance float64 // exploration cap
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps exploration at the given distance.
// Panics with ErrBadMaxDistance on a negative or NaN value, at construction.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no distance cap.
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
