package seqs

import (
	"fmt"

	"sloth/lists"
)

// Group forces seq and partitions its elements by equal. It yields one
// sequence per distinct value, ordered by first occurrence; each holds every
// element equal to that first occurrence, in original order. equal is called
// as equal(representative, candidate); nil means strict equality.
//
// Group never finishes on an infinite sequence. Pass WithGroupLimit to fail
// with ErrLimitExceeded instead.
func Group[T any](seq Seq[T], equal func(a, b T) bool, opts ...Option) (Seq[Seq[T]], error) {
	cfg := newConfig(opts)
	representatives := lists.NewSeenSet(equalOrDefault(equal))
	var buckets []*lists.ArrayList[T]
	pulled := 0
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		pulled++
		if cfg.groupLimit > 0 && pulled > cfg.groupLimit {
			return Seq[Seq[T]]{}, fmt.Errorf("group: more than %d elements: %w",
				cfg.groupLimit, ErrLimitExceeded)
		}
		i := representatives.IndexOf(v)
		if i < 0 {
			representatives.Add(v)
			buckets = append(buckets, lists.NewArrayList[T](1))
			i = len(buckets) - 1
		}
		buckets[i].Add(v)
	}
	tracer().Debugf("group: %d elements in %d groups", pulled, len(buckets))
	groups := make([]Seq[T], len(buckets))
	for i, b := range buckets {
		groups[i] = replay(b)
	}
	return FromSlice(groups), nil
}
