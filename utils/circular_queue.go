package utils

import (
	"iter"

	"github.com/oomph-ac/physim/oerror"
)

// CircularQueue is a fixed capacity queue that overwrites its oldest element once full.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

// NewCircularQueue returns an empty queue able to hold capacity elements.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append adds item to the back of the queue, dropping the oldest element if the queue is full.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circularQueue: append on zero-capacity queue")
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % len(q.items)
	if q.size == len(q.items) {
		q.head = q.tail
		return nil
	}
	q.size++
	return nil
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range q.size {
			if !yield(q.items[(q.head+i)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the amount of elements currently in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Full returns true if the next Append overwrites the oldest element.
func (q *CircularQueue[T]) Full() bool {
	return len(q.items) != 0 && q.size == len(q.items)
}
