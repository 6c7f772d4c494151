package collections

import (
	"fmt"
	"iter"
)

// Queue is a FIFO collection. Append enqueues at the back, so a queue can
// stand in wherever an insertion-ordered collection is expected while still
// exposing Pop for draining.
type Queue[V any] struct {
	entries []V
}

func NewQueue[V any]() *Queue[V] {
	return &Queue[V]{
		entries: make([]V, 0),
	}
}

func (q *Queue[V]) Push(value V) {
	q.entries = append(q.entries, value)
}

func (q *Queue[V]) Append(value V) {
	q.Push(value)
}

// Pop dequeues the front value, or returns the zero value if the queue is
// empty.
func (q *Queue[V]) Pop() V {
	var result V
	if len(q.entries) > 0 {
		result = q.entries[0]
		q.entries = q.entries[1:]
	}
	return result
}

// Peek returns the front value without dequeuing it, or the zero value if
// the queue is empty.
func (q *Queue[V]) Peek() V {
	var result V
	if len(q.entries) > 0 {
		result = q.entries[0]
	}
	return result
}

func (q *Queue[V]) Size() int {
	return len(q.entries)
}

func (q *Queue[V]) IsEmpty() bool {
	return len(q.entries) == 0
}

// Entries returns the queued values from front to back. The returned slice
// is the queue's backing storage and must not be modified.
func (q *Queue[V]) Entries() []V {
	return q.entries
}

func (q *Queue[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range q.entries {
			if !yield(value) {
				return
			}
		}
	}
}

func (q Queue[V]) String() string {
	return fmt.Sprint(q.entries)
}
