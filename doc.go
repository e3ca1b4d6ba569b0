// Package gridpath is a small toolkit for shortest-path search on 2D cost grids.
//
// Under the hood, everything is organized under three subpackages:
//
//	pq/        — min-priority queue of (priority, coordinate) entries with FIFO tie-breaking
//	gridgraph/ — immutable float64 cost grid, Conn4/Conn8 neighbors, walls, connected regions
//	dijkstra/  — multi-target Dijkstra producing a distance field and walkable paths
//
// Quick ASCII example:
//
//	    1 1 # T
//	    1 3 # 1
//	    1 1 1 1
//
// '#' cells cost +Inf and are never entered; T is a target. Every other cell
// gets the cheapest energy needed to reach T and a successor pointer toward it.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
