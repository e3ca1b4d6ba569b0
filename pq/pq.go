package pq

import (
	"container/heap"
	"math"
)

// Queue is a min-priority queue of Entry values.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	h   entryHeap
	seq uint64 // next insertion sequence number, used to break priority ties
}

// New returns an empty Queue whose backing storage is pre-sized for capacity entries.
// A negative capacity is treated as zero.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{h: make(entryHeap, 0, capacity)}
}

// Push inserts an entry with the given priority and coordinate.
// Infinite priorities are accepted; NaN fails with ErrInvalidPriority.
// Complexity: O(log n).
func (q *Queue) Push(priority float64, c Coord) error {
	if math.IsNaN(priority) {
		return ErrInvalidPriority
	}
	heap.Push(&q.h, item{
		Entry: Entry{Priority: priority, Coord: c},
		seq:   q.seq,
	})
	q.seq++

	return nil
}

// PopMin removes and returns the entry with the smallest priority.
// Among equal priorities the earliest pushed entry is returned.
// Returns ErrEmptyQueue if the queue has no entries.
// Complexity: O(log n).
func (q *Queue) PopMin() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(item).Entry, nil
}

// PeekMin returns the entry PopMin would return, without removing it.
// Returns ErrEmptyQueue if the queue has no entries.
// Complexity: O(1).
func (q *Queue) PeekMin() (Entry, error) {
	if len(q.h) == 0 {
		return Entry{}, ErrEmptyQueue
	}

	return q.h[0].Entry, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries in the queue.
func (q *Queue) Len() int { return len(q.h) }

// Reset drops every entry but keeps the allocated storage.
// The tie-break sequence restarts, so a reset queue orders ties like a new one.
func (q *Queue) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.seq = 0
}

// item is an Entry tagged with its insertion sequence number.
type item struct {
	Entry
	seq uint64
}

// entryHeap implements heap.Interface, ordered by priority then by seq.
type entryHeap []item

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an item.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(item)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = item{}
	*h = old[:n-1]

	return it
}
