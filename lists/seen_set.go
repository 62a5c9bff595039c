package lists

import "iter"

// SeenSet is an insertion ordered set whose membership is decided by an
// equality predicate instead of hashing. The predicate need not be an
// equivalence relation, so every lookup is a linear scan over the members
// seen so far.
//
// The predicate is always called as equal(member, candidate).
type SeenSet[T any] struct {
	members *ArrayList[T]
	equal   func(a, b T) bool
}

// NewSeenSet creates an empty set. A nil equal falls back to strict equality
// of the dynamic values, which panics for non-comparable element types.
func NewSeenSet[T any](equal func(a, b T) bool) *SeenSet[T] {
	if equal == nil {
		equal = func(a, b T) bool {
			return any(a) == any(b)
		}
	}
	return &SeenSet[T]{
		members: NewArrayList[T](8),
		equal:   equal,
	}
}

// IndexOf returns the position of the first member equal to v, or -1.
func (s *SeenSet[T]) IndexOf(v T) int {
	return IndexOf[T](s.members, v, s.equal)
}

func (s *SeenSet[T]) Contains(v T) bool {
	return s.IndexOf(v) >= 0
}

// Add inserts v unless an equal member is already present.
// It reports whether v was inserted.
func (s *SeenSet[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	s.members.Add(v)
	return true
}

func (s *SeenSet[T]) Size() int {
	return s.members.Size()
}

func (s *SeenSet[T]) Values() iter.Seq[T] {
	return s.members.Values()
}
