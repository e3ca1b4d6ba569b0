// Package pq provides a min-priority queue of (priority, coordinate) entries
// for shortest-path search over a 2D grid.
//
// Overview:
//
//   - Queue is a binary min-heap backed by a slice and driven by container/heap.
//   - Entries are ordered by Priority ascending. Equal priorities pop in the
//     order they were pushed, so a search replayed with the same pushes visits
//     cells in the same order every run.
//   - The same Coord may be pushed many times. Queue does not deduplicate or
//     support decrease-key; a search keeps its own "settled" set and skips
//     stale entries when they are popped (lazy deletion).
//
// Complexity:
//
//   - Push:    O(log n)
//   - PopMin:  O(log n)
//   - PeekMin: O(1)
//   - Len, IsEmpty: O(1)
//
// Errors (sentinel):
//
//   - ErrInvalidPriority: Push was given a NaN priority.
//   - ErrEmptyQueue:      PopMin or PeekMin was called on an empty queue.
//
// Thread safety:
//
//   - Queue is not safe for concurrent use. Give each search its own Queue.
package pq
