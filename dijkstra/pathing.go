package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pq"
)

// Pathing is the result of a Dijkstra run: a distance field and successor
// pointers toward the nearest target. It is immutable and safe for concurrent reads.
type Pathing struct {
	grid *gridgraph.GridGraph
	dist []float64
	next []int
}

// Distance returns the cost of the cheapest route from c to any target,
// or +Inf if c is unreachable or outside the grid.
func (p *Pathing) Distance(c pq.Coord) float64 {
	if !p.grid.InBounds(c) {
		return math.Inf(1)
	}

	return p.dist[p.grid.Index(c)]
}

// Reachable reports whether some target can be reached from c.
func (p *Pathing) Reachable(c pq.Coord) bool {
	return !math.IsInf(p.Distance(c), 1)
}

// Distances returns a fresh copy of the distance field indexed as [y][x].
func (p *Pathing) Distances() [][]float64 {
	out := make([][]float64, p.grid.Height)
	for y := range out {
		row := p.dist[y*p.grid.Width : (y+1)*p.grid.Width]
		out[y] = append([]float64(nil), row...)
	}

	return out
}

// Path walks from `from` toward the nearest target and returns the visited
// cells, starting with `from`. The walk stops at a target or after limit cells,
// so 1 ≤ len(path) ≤ limit. An unreachable start yields just [from].
//
// Returns ErrOutOfBounds if from lies outside the grid and ErrBadLimit if limit < 1.
// Complexity: O(limit).
func (p *Pathing) Path(from pq.Coord, limit int) ([]pq.Coord, error) {
	if limit < 1 {
		return nil, ErrBadLimit
	}
	if !p.grid.InBounds(from) {
		return nil, fmt.Errorf("%w: path start %v", ErrOutOfBounds, from)
	}

	path := []pq.Coord{from}
	cur := p.grid.Index(from)
	for len(path) < limit {
		cur = p.next[cur]
		if cur < 0 {
			break
		}
		path = append(path, p.grid.Coordinate(cur))
	}

	return path, nil
}
