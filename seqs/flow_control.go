package seqs

type takeIter[T any] struct {
	source    Seq[T]
	remaining int
}

func (it *takeIter[T]) next() (T, bool) {
	if it.remaining <= 0 {
		return end[T]()
	}
	it.remaining--
	return it.source.Next()
}

// Take yields the first n elements of s.
func (s Seq[T]) Take(n int) Seq[T] {
	return Wrap[T]((&takeIter[T]{source: s, remaining: n}).next)
}

type skipIter[T any] struct {
	source    Seq[T]
	remaining int
}

func (it *skipIter[T]) next() (T, bool) {
	for it.remaining > 0 {
		it.remaining--
		if _, ok := it.source.Next(); !ok {
			it.remaining = 0
			return end[T]()
		}
	}
	return it.source.Next()
}

// Skip discards the first n elements of s and yields the rest.
// The discarding happens on the first pull.
func (s Seq[T]) Skip(n int) Seq[T] {
	return Wrap[T]((&skipIter[T]{source: s, remaining: n}).next)
}

type takeWhileIter[T any] struct {
	source    Seq[T]
	predicate func(T) bool
	ended     bool
}

func (it *takeWhileIter[T]) next() (T, bool) {
	if it.ended {
		return end[T]()
	}
	v, ok := it.source.Next()
	if !ok || !it.predicate(v) {
		it.ended = true
		return end[T]()
	}
	return v, true
}

// TakeWhile yields elements as long as predicate holds. The first element
// failing predicate ends the sequence for good.
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T] {
	return Wrap[T]((&takeWhileIter[T]{source: s, predicate: predicate}).next)
}

type skipWhileIter[T any] struct {
	source     Seq[T]
	first      T
	firstTaken bool
	exhausted  bool
}

func (it *skipWhileIter[T]) next() (T, bool) {
	switch {
	case it.exhausted:
		return end[T]()
	case !it.firstTaken:
		it.firstTaken = true
		v := it.first
		var zero T
		it.first = zero
		return v, true
	}
	return it.source.Next()
}

// SkipWhile discards the leading elements satisfying predicate.
//
// Unlike the other lazy operators, SkipWhile pulls the prefix when it is
// called, before the result is pulled at all. The first element failing
// predicate is held back and yielded first.
func (s Seq[T]) SkipWhile(predicate func(T) bool) Seq[T] {
	it := &skipWhileIter[T]{source: s}
	skipped := 0
	for {
		v, ok := s.Next()
		if !ok {
			it.exhausted = true
			break
		}
		if !predicate(v) {
			it.first = v
			break
		}
		skipped++
	}
	tracer().Debugf("skipWhile: discarded %d elements", skipped)
	return Wrap[T](it.next)
}
