package seqs

import "sloth/lists"

type mapIter[T, U any] struct {
	source Seq[T]
	fn     func(T) U
}

func (it *mapIter[T, U]) next() (U, bool) {
	v, ok := it.source.Next()
	if !ok {
		return end[U]()
	}
	return it.fn(v), true
}

// Map applies fn to every element of seq.
func Map[T, U any](seq Seq[T], fn func(T) U) Seq[U] {
	return Wrap[U]((&mapIter[T, U]{source: seq, fn: fn}).next)
}

// Map applies fn to every element. Use the package function Map to change
// the element type.
func (s Seq[T]) Map(fn func(T) T) Seq[T] {
	return Map(s, fn)
}

type filterIter[T any] struct {
	source    Seq[T]
	predicate func(T) bool
}

func (it *filterIter[T]) next() (T, bool) {
	for {
		v, ok := it.source.Next()
		if !ok || it.predicate(v) {
			return v, ok
		}
	}
}

// Filter yields only the elements satisfying predicate. A pull blocks until
// an element passes or the receiver ends.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	return Wrap[T]((&filterIter[T]{source: s, predicate: predicate}).next)
}

// Indexed pairs an element with its zero-based position.
type Indexed[T any] struct {
	Index int
	Value T
}

type enumerateIter[T any] struct {
	source Seq[T]
	index  int
}

func (it *enumerateIter[T]) next() (Indexed[T], bool) {
	v, ok := it.source.Next()
	if !ok {
		return end[Indexed[T]]()
	}
	e := Indexed[T]{Index: it.index, Value: v}
	it.index++
	return e, true
}

// Enumerate pairs every element of seq with a running index starting at 0.
func Enumerate[T any](seq Seq[T]) Seq[Indexed[T]] {
	return Wrap[Indexed[T]]((&enumerateIter[T]{source: seq}).next)
}

type concatIter[T any] struct {
	sources []Source[T]
	current int
}

func (it *concatIter[T]) next() (T, bool) {
	for it.current < len(it.sources) {
		if v, ok := it.sources[it.current].Next(); ok {
			return v, true
		}
		// never pull an ended source again
		it.current++
	}
	return end[T]()
}

// Concat yields all elements of every source, one source after the other.
func Concat[T any](sources ...Source[T]) Seq[T] {
	return Wrap[T]((&concatIter[T]{sources: sources}).next)
}

// Concat yields s to its end, then every element of ys in turn.
func (s Seq[T]) Concat(ys ...Source[T]) Seq[T] {
	sources := make([]Source[T], 0, len(ys)+1)
	sources = append(sources, s)
	return Concat(append(sources, ys...)...)
}

type cycleIter[T any] struct {
	source    Seq[T]
	seen      *lists.ArrayList[T]
	replaying bool
	pos       int
}

func (it *cycleIter[T]) next() (T, bool) {
	if !it.replaying {
		if v, ok := it.source.Next(); ok {
			it.seen.Add(v)
			return v, true
		}
		it.replaying = true
		tracer().Debugf("cycle: first pass ended after %d elements", it.seen.Size())
	}
	if it.seen.IsEmpty() {
		return end[T]()
	}
	v := it.seen.At(it.pos)
	it.pos = (it.pos + 1) % it.seen.Size()
	return v, true
}

// Cycle replays s forever. Elements of the first pass are buffered and
// replayed once s ends; an empty s yields an empty sequence.
//
// The buffer holds every element of s, so s must be finite for Cycle to
// ever start replaying.
func (s Seq[T]) Cycle(opts ...Option) Seq[T] {
	cfg := newConfig(opts)
	return Wrap[T]((&cycleIter[T]{
		source: s,
		seen:   lists.NewArrayList[T](cfg.bufferCapacity),
	}).next)
}

type nubIter[T any] struct {
	source Seq[T]
	seen   *lists.SeenSet[T]
}

func (it *nubIter[T]) next() (T, bool) {
	for {
		v, ok := it.source.Next()
		if !ok {
			return v, false
		}
		if it.seen.Add(v) {
			return v, true
		}
	}
}

// Nub drops every element equal to one yielded before. equal is called as
// equal(earlier, candidate); nil means strict equality.
//
// Each pull compares against all elements yielded so far, O(n²) overall.
func (s Seq[T]) Nub(equal func(a, b T) bool) Seq[T] {
	return Wrap[T]((&nubIter[T]{
		source: s,
		seen:   lists.NewSeenSet(equalOrDefault(equal)),
	}).next)
}
