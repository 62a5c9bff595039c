package seqs

import (
	"errors"
	"iter"
)

// ErrEnd carries the end of a sequence through APIs which return errors.
// Handlers passed to Each return it to stop iterating, and folds over an
// empty sequence without a seed return an error wrapping it.
var ErrEnd = errors.New("end of sequence")

// ErrLimitExceeded is returned when an operator pulls more elements than its
// configured limit allows.
var ErrLimitExceeded = errors.New("element limit exceeded")

// Iterator is the base pull protocol. Every call returns the next element of
// the sequence, or ok == false once the sequence is exhausted. A well-behaved
// Iterator keeps returning false after its first false.
type Iterator[T any] func() (T, bool)

// Next pulls the next element. A nil Iterator is empty.
func (it Iterator[T]) Next() (T, bool) {
	if it == nil {
		return end[T]()
	}
	return it()
}

// Source is anything elements can be pulled from. Both Iterator and Seq
// are Sources.
type Source[T any] interface {
	Next() (T, bool)
}

// end is the End Signal for element type T.
func end[T any]() (v T, ok bool) {
	return v, false
}

// Seq wraps exactly one Iterator and exposes the operator algebra. A Seq is
// immutable; all state lives in the Iterator it holds.
//
// A lazy operator owns its receiver from then on. The zero Seq is empty.
type Seq[T any] struct {
	next Iterator[T]
}

// Wrap turns an Iterator into a Seq.
func Wrap[T any](it Iterator[T]) Seq[T] {
	return Seq[T]{next: it}
}

// Of wraps any Source into a Seq. A Seq is returned unchanged.
func Of[T any](src Source[T]) Seq[T] {
	if src == nil {
		return Seq[T]{}
	}
	switch s := src.(type) {
	case Seq[T]:
		return s
	case Iterator[T]:
		return Wrap(s)
	}
	return Wrap(Iterator[T](src.Next))
}

// Empty returns a sequence without elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Next pulls the next element of s.
func (s Seq[T]) Next() (T, bool) {
	return s.next.Next()
}

// Iterator returns the Iterator s holds. Pulling it advances s.
func (s Seq[T]) Iterator() Iterator[T] {
	if s.next == nil {
		return end[T]
	}
	return s.next
}

// Values adapts s to a range-over-func iterator. Breaking out of the loop
// leaves the remaining elements in s.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq converts a push iterator into a Seq. The returned stop function
// releases the iterator if the sequence is abandoned before it ends.
func FromSeq[T any](seq iter.Seq[T]) (Seq[T], func()) {
	next, stop := iter.Pull(seq)
	return Wrap(Iterator[T](next)), stop
}
