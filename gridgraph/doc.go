// Package gridgraph treats a 2D grid of cell costs as a graph for
// shortest-path search and region analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 of positive costs.
//   - A +Inf cost marks a wall; walls are never passable.
//   - Identifies connected components of passable cells.
//   - Exposes neighbor offsets with step lengths (1 or √2) so a search
//     can charge cost(v)·length for each move.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, default).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonPositiveCost: a cell cost is zero, negative, or NaN.
package gridgraph
