package seqs_test

import (
	"errors"
	"fmt"
	"testing"

	"sloth/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForce(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, seqs.Values(1, 2, 3, 4).Force())
	empty := seqs.Empty[int]().Force()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEach(t *testing.T) {
	var got []int
	err := seqs.Values(1, 2, 3, 4).Each(func(x int) error {
		got = append(got, x)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestEach_StopWithErrEnd(t *testing.T) {
	s := seqs.Naturals()
	var got []int
	err := s.Each(func(x int) error {
		if x == 3 {
			return fmt.Errorf("enough: %w", seqs.ErrEnd)
		}
		got = append(got, x)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
	// the stop is not a rewind: the sequence continues after 3
	v, _ := s.Next()
	assert.Equal(t, 4, v)
}

func TestEach_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := seqs.Values(1, 2, 3).Each(func(x int) error {
		calls++
		if x == 2 {
			return boom
		}
		return nil
	})
	assert.Same(t, boom, err)
	assert.Equal(t, 2, calls)
}

func TestEach_PanicsPropagate(t *testing.T) {
	assert.PanicsWithValue(t, "user failure", func() {
		_ = seqs.Values(1).Each(func(int) error {
			panic("user failure")
		})
	})
}

func TestAllAny(t *testing.T) {
	tests := []struct {
		name      string
		input     []bool
		all, some bool
	}{
		{"AllTrue", []bool{true, true, true, true}, true, true},
		{"OneFalse", []bool{true, false, true, true}, false, true},
		{"AllFalse", []bool{false, false, false, false}, false, false},
		{"Empty", []bool{}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.all, seqs.FromSlice(tt.input).All(nil))
			assert.Equal(t, tt.some, seqs.FromSlice(tt.input).Any(nil))
		})
	}
}

func TestAllAny_Predicated(t *testing.T) {
	assert.True(t, seqs.Values(1, 2, 3, 4).All(func(x int) bool { return x >= 1 }))
	assert.True(t, seqs.Values(1, 2, 3, 4).Any(func(x int) bool { return x >= 2 }))
	assert.False(t, seqs.Values(1, 2, 3, 4).Any(func(x int) bool { return x > 4 }))
}

func TestAllAny_Truthiness(t *testing.T) {
	assert.False(t, seqs.Values(1, 0, 2).All(nil))
	assert.True(t, seqs.Values("", "", "x").Any(nil))
	assert.False(t, seqs.Values[*int](nil, nil).Any(nil))
}

func TestAllAny_ShortCircuitOnInfinite(t *testing.T) {
	assert.False(t, seqs.Repeat(false, -1).All(nil))
	assert.True(t, seqs.Repeat(true, -1).Any(nil))
}

func TestCountFirstLast(t *testing.T) {
	assert.Equal(t, 4, seqs.Range(4).Count())
	v, ok := seqs.Values(7, 8).First()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	v, ok = seqs.Values(7, 8).Last()
	assert.True(t, ok)
	assert.Equal(t, 8, v)
	_, ok = seqs.Empty[int]().Last()
	assert.False(t, ok)
}
