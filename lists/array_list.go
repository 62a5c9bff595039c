package lists

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a slice backed List. The cycle replay buffer, forced
// collections and group buckets are ArrayLists.
type ArrayList[T any] struct {
	data []T
}

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// FromSlice adopts values as the backing array of a new list. The caller
// must not modify values afterwards.
func FromSlice[T any](values []T) *ArrayList[T] {
	return &ArrayList[T]{data: values}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

// At returns the element at index, wrapping around the end of the list.
// It panics on an empty list.
func (al *ArrayList[T]) At(index int) T {
	return al.data[index%len(al.data)]
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

// Reverse reverses the list in place.
func (al *ArrayList[T]) Reverse() {
	slices.Reverse(al.data)
}

// SortStable sorts the list in place, keeping the order of equal elements.
func (al *ArrayList[T]) SortStable(compare func(a, b T) int) {
	slices.SortStableFunc(al.data, compare)
}

// ToSlice returns a copy of the elements. An empty list yields an empty,
// non-nil slice.
func (al *ArrayList[T]) ToSlice() []T {
	out := make([]T, len(al.data))
	copy(out, al.data)
	return out
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
