package seqs

import "errors"

// Force drains s into a slice. An empty sequence yields an empty, non-nil
// slice.
func (s Seq[T]) Force() []T {
	out := []T{}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

// Each calls fn for every element of s. fn may return ErrEnd (or an error
// wrapping it) to stop early; Each then returns nil. Any other error stops
// the iteration and is returned unchanged.
func (s Seq[T]) Each(fn func(T) error) error {
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		if err := fn(v); err != nil {
			if errors.Is(err, ErrEnd) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Count drains s and returns the number of elements.
func (s Seq[T]) Count() int {
	count := 0
	for _, ok := s.Next(); ok; _, ok = s.Next() {
		count++
	}
	return count
}

// First pulls a single element.
func (s Seq[T]) First() (T, bool) {
	return s.Next()
}

// Last drains s and returns its final element.
func (s Seq[T]) Last() (T, bool) {
	var last T
	found := false
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		last, found = v, true
	}
	return last, found
}

// All reports whether every element satisfies predicate, stopping at the
// first that does not. A nil predicate tests for non-zero values, so a
// sequence of bools is checked as is. All of an empty sequence is true.
func (s Seq[T]) All(predicate func(T) bool) bool {
	if predicate == nil {
		predicate = truthy[T]
	}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Any reports whether some element satisfies predicate, stopping at the
// first that does. A nil predicate tests for non-zero values. Any of an
// empty sequence is false.
func (s Seq[T]) Any(predicate func(T) bool) bool {
	if predicate == nil {
		predicate = truthy[T]
	}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		if predicate(v) {
			return true
		}
	}
	return false
}
