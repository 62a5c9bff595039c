package queues

// Queue is a FIFO buffer. Tee sides buffer the elements they have not yet
// consumed in a Queue.
type Queue[T any] interface {
	// puts an element at the end of the queue
	Enqueue(value T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue
	Clear()
}
