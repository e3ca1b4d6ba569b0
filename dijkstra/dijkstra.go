// Package dijkstra implements multi-target Dijkstra over a 2D cost grid.
//
// It processes cells in order of increasing distance using pq.Queue,
// relaxing neighbor steps and recording, for each cell, the neighbor it was
// reached from. Following those successors walks a shortest path back to
// the nearest target.
//
// Notes on implementation choices:
//
//   - Walls (+Inf cost) are never entered.
//   - Cells whose distance would exceed MaxDistance are skipped.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the queue and ignoring stale entries.
//   - Queue ties pop in insertion order, so results are identical run to run.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pq"
)

// Dijkstra computes, for every cell of g, the cheapest cost of reaching any of
// targets, and the successor pointers needed to walk there.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. targets must be non-empty (ErrNoTargets).
//  3. every target must lie inside g (ErrOutOfBounds, wrapped with the coordinate).
//
// Targets on a wall, or whose own cost exceeds MaxDistance, are accepted but
// seed nothing.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func Dijkstra(g *gridgraph.GridGraph, targets []pq.Coord, opts ...Option) (*Pathing, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	for _, t := range targets {
		if !g.InBounds(t) {
			return nil, fmt.Errorf("%w: target %v in %dx%d grid", ErrOutOfBounds, t, g.Width, g.Height)
		}
	}

	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		next:    make([]int, n),
		settled: make([]bool, n),
		pq:      pq.New(len(targets)),
	}
	if err := r.init(targets); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Pathing{grid: g, dist: r.dist, next: r.next}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.GridGraph // The input grid; read-only within Dijkstra.
	options Options
	dist    []float64 // Row-major index → current best distance to a target.
	next    []int     // Row-major index → successor index toward a target, -1 if none.
	settled []bool    // Tracks if a cell's distance is finalized.
	pq      *pq.Queue
}

// init sets every distance to +Inf and seeds the queue with the targets.
func (r *runner) init(targets []pq.Coord) error {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.next[i] = -1
	}

	for _, t := range targets {
		c := r.g.Cost(t)
		if math.IsInf(c, 1) || c > r.options.MaxDistance {
			continue
		}
		i := r.g.Index(t)
		if c >= r.dist[i] {
			continue // duplicate target
		}
		r.dist[i] = c
		if err := r.pq.Push(c, t); err != nil {
			return fmt.Errorf("dijkstra: seeding target %v: %w", t, err)
		}
	}

	return nil
}

// process is the core loop: pop the closest unsettled cell, settle it, relax it.
// It ends when the queue is exhausted.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		e, err := r.pq.PopMin()
		if err != nil {
			return err
		}
		u := r.g.Index(e.Coord)

		// Skip stale entries for cells already finalized.
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		if err = r.relax(e.Coord, u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every passable, unsettled neighbor of u.
func (r *runner) relax(uc pq.Coord, u int) error {
	for _, d := range r.g.NeighborOffsets() {
		vc := uc.Add(d.DX, d.DY)
		if !r.g.Passable(vc) {
			continue
		}
		v := r.g.Index(vc)
		if r.settled[v] {
			continue
		}

		newDist := r.dist[u] + r.g.Cost(vc)*d.Length
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.next[v] = u
		if err := r.pq.Push(newDist, vc); err != nil {
			return fmt.Errorf("dijkstra: relaxing %v→%v: %w", uc, vc, err)
		}
	}

	return nil
}
