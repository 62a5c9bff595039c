package seqs

import (
	"fmt"

	"sloth/lists"

	"golang.org/x/exp/constraints"
)

// Fold aggregates the elements of seq with reducer, starting from acc.
func Fold[T, A any](seq Seq[T], acc A, reducer func(A, T) A) A {
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		acc = reducer(acc, v)
	}
	return acc
}

// Foldl folds s from the left, seeded with its first element. A single
// element sequence returns that element without calling reducer.
// An empty sequence returns an error wrapping ErrEnd.
func (s Seq[T]) Foldl(reducer func(acc, v T) T) (T, error) {
	return foldSeeded(s, "foldl", reducer)
}

// FoldlWith folds s from the left, starting from acc.
func (s Seq[T]) FoldlWith(acc T, reducer func(acc, v T) T) T {
	return Fold(s, acc, reducer)
}

// Foldr folds s from the right, seeded with its last element. It is Foldl
// over the reversed sequence, so s must be finite.
func (s Seq[T]) Foldr(reducer func(acc, v T) T) (T, error) {
	return foldSeeded(s.Reverse(), "foldr", reducer)
}

// FoldrWith folds s from the right, starting from acc.
func (s Seq[T]) FoldrWith(acc T, reducer func(acc, v T) T) T {
	return Fold(s.Reverse(), acc, reducer)
}

func foldSeeded[T any](s Seq[T], op string, reducer func(acc, v T) T) (T, error) {
	acc, ok := s.Next()
	if !ok {
		return acc, fmt.Errorf("%s of empty sequence without seed: %w", op, ErrEnd)
	}
	return Fold(s, acc, reducer), nil
}

// Max returns the greatest element under compare; on ties the earlier
// element wins. A nil compare means DefaultCompare. An empty sequence
// returns an error wrapping ErrEnd.
func (s Seq[T]) Max(compare func(a, b T) int) (T, error) {
	cmp := compareOrDefault(compare)
	return foldSeeded(s, "max", func(acc, v T) T {
		if cmp(acc, v) >= 0 {
			return acc
		}
		return v
	})
}

// Min returns the least element under compare; on ties the later element
// wins. A nil compare means DefaultCompare. An empty sequence returns an
// error wrapping ErrEnd.
func (s Seq[T]) Min(compare func(a, b T) int) (T, error) {
	cmp := compareOrDefault(compare)
	return foldSeeded(s, "min", func(acc, v T) T {
		if cmp(acc, v) < 0 {
			return acc
		}
		return v
	})
}

// MaxOf is Max under the natural order.
func MaxOf[T constraints.Ordered](seq Seq[T]) (T, error) {
	return seq.Max(Compare[T])
}

// MinOf is Min under the natural order.
func MinOf[T constraints.Ordered](seq Seq[T]) (T, error) {
	return seq.Min(Compare[T])
}

// Sum adds up all elements of seq.
func Sum[T Number](seq Seq[T]) T {
	var total T
	return Fold(seq, total, func(acc, v T) T {
		return acc + v
	})
}

// force drains s into a list owned by the caller.
func (s Seq[T]) force() *lists.ArrayList[T] {
	return lists.FromSlice(s.Force())
}

type listIter[T any] struct {
	list *lists.ArrayList[T]
	pos  int
}

func (it *listIter[T]) next() (T, bool) {
	v, err := it.list.Get(it.pos)
	if err != nil {
		return end[T]()
	}
	it.pos++
	return v, true
}

// replay returns a lazy sequence over a forced list.
func replay[T any](l *lists.ArrayList[T]) Seq[T] {
	return Wrap[T]((&listIter[T]{list: l}).next)
}

// Reverse forces s and yields its elements back to front.
func (s Seq[T]) Reverse() Seq[T] {
	l := s.force()
	l.Reverse()
	return replay(l)
}

// Sort forces s and yields its elements in ascending order under compare.
// The sort is stable. A nil compare means DefaultCompare.
func (s Seq[T]) Sort(compare func(a, b T) int) Seq[T] {
	l := s.force()
	l.SortStable(compareOrDefault(compare))
	return replay(l)
}

// Sorted is Sort under the natural order.
func Sorted[T constraints.Ordered](seq Seq[T]) Seq[T] {
	return seq.Sort(Compare[T])
}
