package seqs

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) next() (T, bool) {
	if it.index >= len(it.items) {
		return end[T]()
	}
	v := it.items[it.index]
	it.index++
	return v, true
}

// FromSlice returns a sequence over the elements of items.
// The slice is not copied.
func FromSlice[T any](items []T) Seq[T] {
	return Wrap[T]((&sliceIter[T]{items: items}).next)
}

// Values is FromSlice for an argument list.
func Values[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

type stringIter struct {
	s   string
	pos int
}

func (it *stringIter) next() (rune, bool) {
	if it.pos >= len(it.s) {
		return end[rune]()
	}
	r, size := utf8.DecodeRuneInString(it.s[it.pos:])
	it.pos += size
	return r, true
}

// FromString returns a sequence over the runes of s.
func FromString(s string) Seq[rune] {
	return Wrap[rune]((&stringIter{s: s}).next)
}

// FromMap returns the key/value pairs of m ordered by key.
// The keys are collected when FromMap is called; values are read on pull.
func FromMap[K constraints.Ordered, V any](m map[K]V) Seq[Pair[K, V]] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Compare[K])
	return Map(FromSlice(keys), func(k K) Pair[K, V] {
		return Pair[K, V]{V1: k, V2: m[k]}
	})
}

type rangeIter[N Number] struct {
	cur, stop, step N
}

func (it *rangeIter[N]) next() (N, bool) {
	var zero N
	switch {
	case it.step > zero && it.cur < it.stop:
	case it.step < zero && it.cur > it.stop:
	default:
		return end[N]()
	}
	v := it.cur
	it.cur += it.step
	return v, true
}

// Range returns 0, 1, ... stop-1.
func Range[N Number](stop N) Seq[N] {
	return RangeStep(0, stop, 1)
}

// RangeFrom returns start, start+1, ... up to but excluding stop.
func RangeFrom[N Number](start, stop N) Seq[N] {
	return RangeStep(start, stop, 1)
}

// RangeStep returns start, start+step, ... up to but excluding stop.
// A negative step counts down; a zero step yields nothing.
func RangeStep[N Number](start, stop, step N) Seq[N] {
	return Wrap[N]((&rangeIter[N]{cur: start, stop: stop, step: step}).next)
}

type repeatIter[T any] struct {
	value T
	count int
}

func (it *repeatIter[T]) next() (T, bool) {
	if it.count == 0 {
		return end[T]()
	}
	if it.count > 0 {
		it.count--
	}
	return it.value, true
}

// Repeat returns value count times. A negative count repeats forever.
func Repeat[T any](value T, count int) Seq[T] {
	return Wrap[T]((&repeatIter[T]{value: value, count: count}).next)
}

// Generate returns the infinite sequence of f's results.
func Generate[T any](f func() T) Seq[T] {
	return Wrap[T](func() (T, bool) {
		return f(), true
	})
}

type naturalsIter struct {
	n int
}

func (it *naturalsIter) next() (int, bool) {
	v := it.n
	it.n++
	return v, true
}

// Naturals returns the infinite sequence 0, 1, 2, ...
func Naturals() Seq[int] {
	return Wrap[int]((&naturalsIter{}).next)
}
