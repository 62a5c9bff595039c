package seqs

import (
	"slices"

	"sloth/lists"
)

// The set operators compare elements with a caller supplied equality
// predicate instead of hashing, so every membership test is a linear scan.
// A nil predicate means strict equality.

// Union yields the distinct elements of s followed by the distinct elements
// of ys not already yielded. It is lazy but O(n²).
func (s Seq[T]) Union(ys Source[T], equal func(a, b T) bool) Seq[T] {
	return s.Concat(ys).Nub(equal)
}

// drainInto adds every element of src to a new seen-set.
func drainInto[T any](src Source[T], equal func(a, b T) bool) *lists.SeenSet[T] {
	seen := lists.NewSeenSet(equal)
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		seen.Add(v)
	}
	return seen
}

// Intersect yields the distinct elements of ys that equal some element of s.
//
// s is drained into a seen-set when Intersect is called and must therefore
// be finite; ys is pulled lazily.
func (s Seq[T]) Intersect(ys Source[T], equal func(a, b T) bool) Seq[T] {
	equal = equalOrDefault(equal)
	seen := drainInto[T](s, equal)
	tracer().Debugf("intersect: %d distinct elements on the left", seen.Size())
	return Of(ys).Nub(equal).Filter(seen.Contains)
}

// Difference yields the elements of s equal to no element of ys. Duplicates
// in s are kept.
//
// ys is drained into a seen-set when Difference is called and must
// therefore be finite; s is pulled lazily.
func (s Seq[T]) Difference(ys Source[T], equal func(a, b T) bool) Seq[T] {
	excluded := drainInto(ys, equalOrDefault(equal))
	tracer().Debugf("difference: %d distinct elements excluded", excluded.Size())
	return s.Filter(func(v T) bool {
		return !excluded.Contains(v)
	})
}

type symmetricDifferenceIter[T any] struct {
	tails  [2][]T // reversed operands, consumed from the back
	side   int
	common *lists.SeenSet[T]
}

func (it *symmetricDifferenceIter[T]) next() (T, bool) {
	for it.side < len(it.tails) {
		tail := it.tails[it.side]
		if len(tail) == 0 {
			it.side++
			continue
		}
		v := tail[len(tail)-1]
		it.tails[it.side] = tail[:len(tail)-1]
		if !it.common.Contains(v) {
			return v, true
		}
	}
	return end[T]()
}

// SymmetricDifference yields the elements of s, then those of ys, that are
// not in the intersection of both. Duplicates are kept and the original
// order of each operand is preserved.
//
// Both operands are forced when SymmetricDifference is called.
func (s Seq[T]) SymmetricDifference(ys Source[T], equal func(a, b T) bool) Seq[T] {
	equal = equalOrDefault(equal)
	xs, other := s.Force(), Of(ys).Force()
	common := drainInto[T](FromSlice(xs).Intersect(FromSlice(other), equal), equal)
	tracer().Debugf("symmetricDifference: %d + %d elements, %d in common",
		len(xs), len(other), common.Size())
	slices.Reverse(xs)
	slices.Reverse(other)
	return Wrap[T]((&symmetricDifferenceIter[T]{
		tails:  [2][]T{xs, other},
		common: common,
	}).next)
}
