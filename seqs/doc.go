/*
Package seqs is a composable algebra over pull-based lazy sequences.

A sequence is produced by an [Iterator], a function which returns the next
element on every call until it reports exhaustion with ok == false. [Seq]
wraps one Iterator and exposes the operators:

  - **Lazy operators**: [Seq.Map], [Seq.Filter], [Seq.Take], [Seq.Skip],
    [Seq.TakeWhile], [Enumerate], [Seq.Concat], [Seq.Cycle], [Seq.Nub],
    [Seq.Union]. They allocate nothing but their own small state until the
    result is pulled.
  - **Partially eager operators**: [Seq.SkipWhile] discards its prefix at
    construction, [Seq.Intersect] drains the receiver and [Seq.Difference]
    drains its argument before the first pull.
  - **Strict operators**: [Seq.Force], [Seq.Each], [Seq.Foldl], [Seq.Foldr],
    [Seq.All], [Seq.Any], [Seq.Max], [Seq.Min], [Seq.Reverse], [Seq.Sort],
    [Seq.SymmetricDifference], [Product], [Group].
  - **Fan-out**: [Seq.Tee] and [TeeN] split one sequence into independently
    pullable views sharing a single pull of the source.
  - **Combination**: [Zip], [Zip2] and [Product].

# Ownership

A lazy operator takes over its receiver: the returned Seq pulls from it, so
the receiver must not be pulled by anybody else afterwards. Two consumers
pulling the same un-teed sequence see an arbitrary interleaving of elements.
Nothing in this package is safe for concurrent use.

# End of sequence

Inside pulls exhaustion is never an error. Operators that report errors use
[ErrEnd]: [Seq.Each] handlers return it to stop early, and folds over an
empty sequence without a seed return an error wrapping it.

	sum, err := seqs.Range(10).
		Filter(func(n int) bool { return n%2 == 0 }).
		Foldl(func(acc, n int) int { return acc + n })

# Resource growth

[Seq.Tee] buffers every element one side has pulled and the other has not.
If one side runs far ahead of the other, the lagging side's buffer grows
without bound. [Seq.Cycle] keeps every element of the first pass.
*/
package seqs

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sloth.seqs'.
func tracer() tracing.Trace {
	return tracing.Select("sloth.seqs")
}
