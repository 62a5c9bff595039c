package lists

import "iter"

// List is the append-mostly, index addressable collection the sequence
// operators buffer into.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear drops all elements and releases their references
	Clear()

	// IndexFunc returns the index of the first element satisfying predicate, or -1
	IndexFunc(predicate func(T) bool) int

	// ToSlice copies the list into a native slice
	ToSlice() []T

	// Values iterates the elements front to back
	Values() iter.Seq[T]
}

// IndexOf returns the index of the first element equal to v under equal, or -1.
// Since T is any, an equality function must be provided.
func IndexOf[T any](l List[T], v T, equal func(a, b T) bool) int {
	return l.IndexFunc(func(m T) bool {
		return equal(m, v)
	})
}
