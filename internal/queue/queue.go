// Package queue provides a minimal FIFO queue of int32 values for the
// automaton builder's breadth-first traversals.
//
// The builder's failure-link and output-propagation passes need strict
// breadth-first order with O(1) amortized enqueue/dequeue and no
// membership queries. Every trie state is enqueued exactly once, so a
// plain growable slice with a read cursor serves just as well as a sparse-set-backed
// frontier would, without the membership-tracking machinery a sparse set
// carries for use cases that need it.
package queue

// Queue is a FIFO queue of int32 values backed by a growable slice with a
// read cursor. Once the cursor passes half the backing array's length the
// array is compacted, so amortized enqueue/dequeue stays O(1) without
// unbounded growth on long-running traversals.
type Queue struct {
	items []int32
	head  int
}

// NewQueue creates an empty queue with the given initial capacity hint.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]int32, 0, capacity)}
}

// Push enqueues v.
func (q *Queue) Push(v int32) {
	q.items = append(q.items, v)
}

// Pop dequeues and returns the oldest pushed value. ok is false if the
// queue is empty.
func (q *Queue) Pop() (v int32, ok bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	v = q.items[q.head]
	q.head++
	if q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return v, true
}

// Empty reports whether the queue has no more values to pop.
func (q *Queue) Empty() bool {
	return q.head >= len(q.items)
}
