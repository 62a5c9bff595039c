package seqs

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type zipIter[T any] struct {
	sources []Source[T]
	ended   bool
}

func (it *zipIter[T]) next() ([]T, bool) {
	if it.ended {
		return end[[]T]()
	}
	row := make([]T, len(it.sources))
	for i, src := range it.sources {
		v, ok := src.Next()
		if !ok {
			// values already pulled for this row are dropped
			it.ended = true
			return end[[]T]()
		}
		row[i] = v
	}
	return row, true
}

// Zip pulls one element from seq and from each of others per step and
// yields them as a row, in argument order. It ends as soon as any operand
// ends, so its length is that of the shortest operand.
func Zip[T any](seq Seq[T], others ...Source[T]) Seq[[]T] {
	sources := make([]Source[T], 0, len(others)+1)
	sources = append(sources, seq)
	return Wrap[[]T]((&zipIter[T]{sources: append(sources, others...)}).next)
}

type zip2Iter[A, B any] struct {
	a     Source[A]
	b     Source[B]
	ended bool
}

func (it *zip2Iter[A, B]) next() (Pair[A, B], bool) {
	if it.ended {
		return end[Pair[A, B]]()
	}
	va, ok := it.a.Next()
	if !ok {
		it.ended = true
		return end[Pair[A, B]]()
	}
	vb, ok := it.b.Next()
	if !ok {
		it.ended = true
		return end[Pair[A, B]]()
	}
	return Pair[A, B]{V1: va, V2: vb}, true
}

// Zip2 pairs the elements of two sequences of different element types.
func Zip2[A, B any](a Seq[A], b Source[B]) Seq[Pair[A, B]] {
	return Wrap[Pair[A, B]]((&zip2Iter[A, B]{a: a, b: b}).next)
}

type productIter[T any] struct {
	pools   [][]T
	indices []int
	ended   bool
}

func (it *productIter[T]) next() ([]T, bool) {
	if it.ended {
		return end[[]T]()
	}
	row := make([]T, len(it.pools))
	for i, pool := range it.pools {
		row[i] = pool[it.indices[i]]
	}
	// odometer step: the first pool turns fastest
	it.ended = true
	for i := range it.indices {
		it.indices[i]++
		if it.indices[i] < len(it.pools[i]) {
			it.ended = false
			break
		}
		it.indices[i] = 0
	}
	return row, true
}

// Product yields every combination of one element from seq and one from
// each of others. seq varies fastest and the last operand slowest:
//
//	Product([1 2], [3 4]) = [1 3] [2 3] [1 4] [2 4]
//
// All operands are forced when Product is called. If any is empty the
// product is empty.
func Product[T any](seq Seq[T], others ...Source[T]) Seq[[]T] {
	pools := make([][]T, 0, len(others)+1)
	pools = append(pools, seq.Force())
	for _, o := range others {
		pools = append(pools, Of(o).Force())
	}
	it := &productIter[T]{pools: pools, indices: make([]int, len(pools))}
	for _, pool := range pools {
		if len(pool) == 0 {
			it.ended = true
		}
	}
	return Wrap[[]T](it.next)
}
