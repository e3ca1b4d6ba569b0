// Package gridgraph provides utilities to treat a 2D grid of cell costs
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Passability checks (+Inf cells are walls)
//   - Identification of connected components of passable cells
//
// Cells are addressed with pq.Coord, where X is the column and Y the row.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/pq"
)

var (
	conn4Offsets = []Offset{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	}
	conn8Offsets = []Offset{
		{0, -1, 1}, {1, -1, math.Sqrt2}, {1, 0, 1}, {1, 1, math.Sqrt2},
		{0, 1, 1}, {-1, 1, math.Sqrt2}, {-1, 0, 1}, {-1, -1, math.Sqrt2},
	}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of costs indexed as costs[y][x]. It deep-copies the input to ensure immutability.
// Every cost must be positive; +Inf is allowed and marks a wall.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNonPositiveCost (wrapped with the offending cell) for a cost ≤ 0 or NaN.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(costs [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Flatten row-major, validating as we go
	flat := make([]float64, 0, w*h)
	for y, row := range costs {
		for x, c := range row {
			if !(c > 0) {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%v", ErrNonPositiveCost, x, y, c)
			}
			flat = append(flat, c)
		}
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Conn:    opts.Conn,
		costs:   flat,
		offsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c pq.Coord) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Cost returns the cost of entering c, or +Inf if c is out of bounds.
func (gg *GridGraph) Cost(c pq.Coord) float64 {
	if !gg.InBounds(c) {
		return math.Inf(1)
	}

	return gg.costs[gg.Index(c)]
}

// Passable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) Passable(c pq.Coord) bool {
	return !math.IsInf(gg.Cost(c), 1)
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
// The returned slice is shared and must not be modified.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Offset {
	return gg.offsets
}

// Index maps c to a row-major index: Y*Width + X.
// Complexity: O(1).
func (gg *GridGraph) Index(c pq.Coord) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) pq.Coord {
	return pq.Coord{X: idx % gg.Width, Y: idx / gg.Width}
}

// Size returns the number of cells, Width×Height.
func (gg *GridGraph) Size() int {
	return len(gg.costs)
}
