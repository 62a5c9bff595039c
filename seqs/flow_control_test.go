package seqs_test

import (
	"testing"

	"sloth/seqs"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTake(t *testing.T) {
	got := seqs.RangeFrom(1, 1000).Take(4).Force()
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestTake_Edges(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Zero", 0, []int{}},
		{"Negative", -1, []int{}},
		{"MoreThanAvailable", 10, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqs.Values(1, 2, 3).Take(tt.n).Force())
		})
	}
}

func TestTake_StopsPulling(t *testing.T) {
	src, pulls := counted(seqs.Naturals())
	s := src.Take(2)
	s.Force()
	s.Next()
	assert.Equal(t, 2, *pulls)
}

func TestSkip(t *testing.T) {
	s := seqs.Naturals().Map(func(n int) int { return n + 1 }).Skip(4)
	assert.Equal(t, []int{5, 6, 7, 8}, s.Take(4).Force())
}

func TestSkip_IsLazy(t *testing.T) {
	src, pulls := counted(seqs.Range(10))
	s := src.Skip(3)
	assert.Zero(t, *pulls)
	v, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, *pulls)
}

func TestSkip_PastEnd(t *testing.T) {
	assert.Empty(t, seqs.Values(1, 2).Skip(5).Force())
}

func TestTakeWhile(t *testing.T) {
	got := seqs.Values(1, 2, 3, 4, 5, 1).TakeWhile(func(x int) bool { return x < 5 }).Force()
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestTakeWhile_EndIsPermanent(t *testing.T) {
	src, pulls := counted(seqs.Values(1, 9, 1, 1))
	s := src.TakeWhile(func(x int) bool { return x < 5 })
	assert.Equal(t, []int{1}, s.Force())
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, *pulls)
}

func TestSkipWhile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sloth.seqs")
	defer teardown()
	//
	got := seqs.Values(4, 5, 6, 7, 4).SkipWhile(func(x int) bool { return x < 5 }).Force()
	assert.Equal(t, []int{5, 6, 7, 4}, got)
}

func TestSkipWhile_IsEagerAtConstruction(t *testing.T) {
	src, pulls := counted(seqs.Values(1, 2, 3, 10, 11))
	s := src.SkipWhile(func(x int) bool { return x < 10 })
	// the prefix and the first kept element are pulled before any Next
	assert.Equal(t, 4, *pulls)
	v, _ := s.Next()
	assert.Equal(t, 10, v)
	assert.Equal(t, 4, *pulls)
	assert.Equal(t, []int{11}, s.Force())
}

func TestSkipWhile_AllSkipped(t *testing.T) {
	s := seqs.Values(1, 2, 3).SkipWhile(func(int) bool { return true })
	assert.Empty(t, s.Force())
	_, ok := s.Next()
	assert.False(t, ok)
}
