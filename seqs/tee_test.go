package seqs_test

import (
	"testing"

	"sloth/seqs"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTee(t *testing.T) {
	a, b := seqs.Values(1, 2, 3, 4).Tee()
	assert.Equal(t, []int{1, 2, 3, 4}, a.Force())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Force())
}

func TestTee_Interleaved(t *testing.T) {
	src, pulls := counted(seqs.Range(5))
	a, b := src.Tee()
	var got []int
	for range 2 {
		v, _ := a.Next()
		got = append(got, v)
	}
	v, _ := b.Next()
	got = append(got, v)
	v, _ = a.Next()
	got = append(got, v)
	assert.Equal(t, []int{0, 1, 0, 2}, got)
	assert.Equal(t, 3, *pulls)

	assert.Equal(t, []int{1, 2, 3, 4}, b.Force())
	assert.Equal(t, []int{3, 4}, a.Force())
	assert.Equal(t, 6, *pulls)
}

func TestTee_Infinite(t *testing.T) {
	a, b := seqs.Naturals().Tee()
	assert.Equal(t, []int{0, 1, 2}, a.Take(3).Force())
	assert.Equal(t, []int{0, 1, 2, 3}, b.Take(4).Force())
	v, _ := a.Next()
	assert.Equal(t, 3, v)
}

func TestTee_DoesNotRepullEndedSource(t *testing.T) {
	f := &flaky{}
	a, b := seqs.Of[int](f).Tee()
	assert.Equal(t, []int{1, 2}, a.Force())
	assert.Equal(t, []int{1, 2}, b.Force())
	_, ok := a.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, f.calls)
}

func TestTeeN(t *testing.T) {
	sides := seqs.TeeN(seqs.Values("x", "y"), 3)
	require.Len(t, sides, 3)
	for _, side := range sides {
		assert.Equal(t, []string{"x", "y"}, side.Force())
	}
	assert.Nil(t, seqs.TeeN(seqs.Values(1), 0))
}

func TestTee_HighWater(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sloth.seqs")
	defer teardown()
	//
	a, b := seqs.Range(100).Tee(seqs.WithHighWater(8), seqs.WithBufferCapacity(2))
	assert.Equal(t, 100, a.Count())
	assert.Equal(t, 100, b.Count())
}
