// Package dijkstra defines core types and configuration options
// for multi-target Dijkstra on a gridgraph.GridGraph.
//
// The search starts from every target at once. Each target's distance is
// its own cell cost; stepping from u to a neighbor v adds cost(v) times the
// step length (1 orthogonal, √2 diagonal). The result is a distance field
// plus, for every reached cell, the neighbor one step closer to a target.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = W×H cells.
//	   • Each cell is settled at most once.
//	   • Each relaxation may push into the priority queue (up to N·d pushes, d = 4 or 8).
//	– Space: O(N)
//	   • O(N) for distance and successor slices.
//	   • O(N·d) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; cells beyond it stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided grid pointer is nil.
//	– ErrNoTargets       if no target cell is given.
//	– ErrOutOfBounds     if a target or a path start lies outside the grid.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadLimit        if a path limit is < 1.
//
// Example usage:
//
//	pathing, err := Dijkstra(g, []pq.Coord{{X: 4, Y: 2}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := pathing.Path(pq.Coord{X: 0, Y: 0}, 32)
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: grid is nil")

	// ErrNoTargets indicates that the target list is empty.
	ErrNoTargets = errors.New("dijkstra: at least one target is required")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: coordinate out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadLimit indicates a path length limit below one.
	ErrBadLimit = errors.New("dijkstra: path limit must be at least 1")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – cells whose distance would exceed this value are not reached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are left unreachable.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with MaxDistance = +Inf.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
