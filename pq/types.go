package pq

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates PopMin or PeekMin on a queue with no entries.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrInvalidPriority indicates a NaN priority, which has no place in a total order.
	ErrInvalidPriority = errors.New("pq: priority is NaN")
)

// Coord identifies a cell of a 2D grid. X is the column, Y the row.
// Two Coords are equal when both fields are equal.
type Coord struct {
	X, Y int
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Entry is a queued (priority, coordinate) pair.
type Entry struct {
	Priority float64
	Coord    Coord
}
