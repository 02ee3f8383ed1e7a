// Package pqueue provides a generic priority queue backed by a binary
// heap that lives in a single flat slice.
package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Pop and Peek when the queue has no elements.
// Use errors.Is to test for it.
var ErrEmpty = errors.New("queue is empty")

// Less reports whether a must be ordered before b. It must describe a
// strict weak order: irreflexive, asymmetric and transitive. The queue
// does not detect a comparator that breaks these rules and its behaviour
// with one is unspecified.
type Less[T any] func(a, b T) bool

// Queue is a priority queue over elements of type T.
//
// Pop always returns the element that the comparator orders last, so with
// the natural order of New the queue serves the largest element first.
// Substitute a reversed comparator (NewMin) or your own (NewFunc) for a
// different notion of priority.
//
// A Queue is not safe for concurrent use: callers that share one between
// goroutines must guard every operation with a single lock.
type Queue[T any] struct {
	items []T
	less  Less[T]
}

// New creates a queue over a naturally ordered type. Pop returns the
// maximum first.
func New[T constraints.Ordered]() *Queue[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewMin creates a queue over a naturally ordered type with the order
// reversed. Pop returns the minimum first.
func NewMin[T constraints.Ordered]() *Queue[T] {
	return NewFunc[T](func(a, b T) bool { return a > b })
}

// NewFunc creates a queue ordered by the supplied comparator.
func NewFunc[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{less: less}
}

// Len returns the number of elements stored in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return len(q.items) == 0
}

// Push adds v to the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the element that the comparator orders last.
// It returns ErrEmpty if the queue has no elements.
func (q *Queue[T]) Pop() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	v := q.items[0]

	n := len(q.items) - 1
	q.swap(0, n)
	q.items = q.items[0:n]

	if n > 0 {
		q.siftDown(0)
	}

	return v, nil
}

// Peek returns the element that Pop would return without removing it.
// It returns ErrEmpty if the queue has no elements.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[0], nil
}

// Reset discards all elements but keeps the comparator, so the queue can
// be reused.
func (q *Queue[T]) Reset() {
	q.items = q.items[0:0]
}

// Clone returns a queue with a copy of the elements and the same
// comparator. The two queues share no storage afterwards.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{less: q.less}

	if len(q.items) > 0 {
		c.items = make([]T, len(q.items))
		copy(c.items, q.items)
	}

	return c
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// siftUp moves the element at index i towards the root until its parent
// is no longer ordered before it.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !q.less(q.items[p], q.items[i]) {
			break
		}

		q.swap(p, i)
		i = p
	}
}

// siftDown moves the element at index i towards the leaves until no child
// is ordered after it.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)

	for {
		l := left(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			return
		}

		r := right(i)
		if r >= n {
			// Only the left child exists.
			if q.less(q.items[i], q.items[l]) {
				q.swap(i, l)
				i = l
				continue
			}
			return
		}

		if !q.less(q.items[i], q.items[l]) && !q.less(q.items[i], q.items[r]) {
			return
		}

		// Swap with the more extreme of the two children so that it
		// ends up above both the parent and its sibling.
		c := r
		if q.less(q.items[r], q.items[l]) {
			c = l
		}

		q.swap(i, c)
		i = c
	}
}
