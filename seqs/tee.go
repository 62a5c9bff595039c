package seqs

import "sloth/queues"

// teeSource is the state shared by all sides of a tee: the single source
// and one buffer per side holding what that side has not consumed yet.
type teeSource[T any] struct {
	source    Seq[T]
	buffers   []*queues.ArrayQueue[T]
	warned    []bool
	highWater int
	exhausted bool
}

func (t *teeSource[T]) pull(side int) (T, bool) {
	buf := t.buffers[side]
	if v, ok := buf.Dequeue(); ok {
		if buf.IsEmpty() && t.highWater > 0 && buf.Cap() > t.highWater {
			buf.ResizeToFit()
		}
		return v, true
	}
	// the source may not be well-behaved, so never pull it after its end
	if t.exhausted {
		return end[T]()
	}
	v, ok := t.source.Next()
	if !ok {
		t.exhausted = true
		return end[T]()
	}
	for i, other := range t.buffers {
		if i == side {
			continue
		}
		other.Enqueue(v)
		t.checkDepth(i)
	}
	return v, true
}

func (t *teeSource[T]) checkDepth(side int) {
	if t.highWater <= 0 || t.warned[side] {
		return
	}
	if depth := t.buffers[side].Size(); depth >= t.highWater {
		t.warned[side] = true
		tracer().Infof("tee: side %d is %d elements behind", side, depth)
	}
}

type teeSide[T any] struct {
	shared *teeSource[T]
	side   int
}

func (it *teeSide[T]) next() (T, bool) {
	return it.shared.pull(it.side)
}

// TeeN splits seq into n sequences which each yield every element of seq,
// in order, however their pulls interleave. seq must not be pulled directly
// afterwards. n < 1 returns nil.
//
// Elements pulled by one side are buffered for the others until they catch
// up. If one side is never pulled its buffer grows without bound.
func TeeN[T any](seq Seq[T], n int, opts ...Option) []Seq[T] {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts)
	shared := &teeSource[T]{
		source:    seq,
		buffers:   make([]*queues.ArrayQueue[T], n),
		warned:    make([]bool, n),
		highWater: cfg.highWater,
	}
	sides := make([]Seq[T], n)
	for i := range sides {
		shared.buffers[i] = queues.NewArrayQueue[T](cfg.bufferCapacity)
		sides[i] = Wrap[T]((&teeSide[T]{shared: shared, side: i}).next)
	}
	return sides
}

// Tee splits s into two independently pullable sequences. See TeeN.
func (s Seq[T]) Tee(opts ...Option) (Seq[T], Seq[T]) {
	sides := TeeN(s, 2, opts...)
	return sides[0], sides[1]
}
