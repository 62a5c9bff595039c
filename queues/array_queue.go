package queues

import "math/bits"

// ArrayQueue is a FIFO queue on a growable ring buffer.
// Enqueue is amortized O(1); the buffer doubles when full and never shrinks
// on its own (see ResizeToFit).
type ArrayQueue[T any] struct {
	ring  []T // length is always a power of two
	front int // index of the oldest element
	count int // number of buffered elements
}

// NewArrayQueue creates a queue able to hold initialCapacity elements before
// its first resize. Capacities are rounded up to a power of two.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	return &ArrayQueue[T]{
		ring: make([]T, roundUp(initialCapacity)),
	}
}

// roundUp returns the smallest power of two >= n, for n >= 1.
func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

func (q *ArrayQueue[T]) mask() int {
	return len(q.ring) - 1
}

// relocate moves the buffered elements to the front of a new ring of the
// given capacity, which must hold at least q.count elements.
func (q *ArrayQueue[T]) relocate(capacity int) {
	next := make([]T, capacity)
	if q.front+q.count <= len(q.ring) {
		copy(next, q.ring[q.front:q.front+q.count])
	} else {
		n := copy(next, q.ring[q.front:])
		copy(next[n:], q.ring[:q.count-n])
	}
	clear(q.ring)
	q.ring = next
	q.front = 0
}

func (q *ArrayQueue[T]) Enqueue(value T) {
	if q.count == len(q.ring) {
		q.relocate(roundUp(q.count + 1))
	}
	q.ring[(q.front+q.count)&q.mask()] = value
	q.count++
}

func (q *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if q.count == 0 {
		return value, false
	}
	value = q.ring[q.front]
	var zero T
	q.ring[q.front] = zero // drop the reference for the GC
	q.front = (q.front + 1) & q.mask()
	q.count--
	return value, true
}

func (q *ArrayQueue[T]) Peek() (value T, ok bool) {
	if q.count == 0 {
		return value, false
	}
	return q.ring[q.front], true
}

func (q *ArrayQueue[T]) Size() int {
	return q.count
}

// Cap returns the number of elements the queue holds before growing.
func (q *ArrayQueue[T]) Cap() int {
	return len(q.ring)
}

func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *ArrayQueue[T]) Clear() {
	clear(q.ring)
	q.front = 0
	q.count = 0
}

// ResizeToFit shrinks the ring to the smallest power of two holding the
// buffered elements. A tee side that has caught up calls it to give back
// memory after a burst.
func (q *ArrayQueue[T]) ResizeToFit() {
	q.relocate(roundUp(q.count))
}
