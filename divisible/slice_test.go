package divisible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRangeDivideAt(t *testing.T) {
	r := NewSliceRange([]int{1, 2, 3, 4, 5})

	left, right := r.DivideAt(2)

	assert.Equal(t, []int{1, 2}, left.Items())
	assert.Equal(t, []int{3, 4, 5}, right.Items())
	assert.Equal(t, 2, left.BaseLength())
	assert.Equal(t, 3, right.BaseLength())
}

func TestSliceRangeDivideAtBoundaries(t *testing.T) {
	t.Run("index zero", func(t *testing.T) {
		left, right := NewSliceRange([]int{1, 2, 3}).DivideAt(0)
		assert.Equal(t, 0, left.BaseLength())
		assert.Equal(t, 3, right.BaseLength())
	})

	t.Run("full length", func(t *testing.T) {
		left, right := NewSliceRange([]int{1, 2, 3}).DivideAt(3)
		assert.Equal(t, 3, left.BaseLength())
		assert.Equal(t, 0, right.BaseLength())
	})

	t.Run("past the end clamps", func(t *testing.T) {
		left, right := NewSliceRange([]int{1, 2, 3}).DivideAt(10)
		assert.Equal(t, 3, left.BaseLength())
		assert.Equal(t, 0, right.BaseLength())
	})
}

func TestSliceRangeClone(t *testing.T) {
	items := []int{1, 2, 3}
	r := NewSliceRange(items)

	c := r.Clone()
	items[0] = 99

	assert.Equal(t, []int{99, 2, 3}, r.Items(), "original views the caller slice")
	assert.Equal(t, []int{1, 2, 3}, c.Items(), "clone is independent")
}

func TestSliceRangeExtractIter(t *testing.T) {
	r := NewSliceRange([]int{1, 2, 3, 4, 5})

	it := r.ExtractIter(2)
	assert.Equal(t, []int{1, 2}, Drain[int](it))
	assert.Equal(t, 3, r.BaseLength(), "remainder is kept for subsequent calls")

	it = r.ExtractIter(10)
	assert.Equal(t, []int{3, 4, 5}, Drain[int](it), "oversized extraction clamps")
	assert.Equal(t, 0, r.BaseLength())
}

func TestSliceRangeToSequential(t *testing.T) {
	r := NewSliceRange([]string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, Drain[string](r.ToSequential()))
}

func TestSliceRangeHints(t *testing.T) {
	r := NewSliceRange([]int{1, 2, 3}).
		WithPolicy(Adaptive).
		WithBlocksSizes([]int{2, 1})

	assert.Equal(t, Adaptive, r.Policy())
	assert.Equal(t, []int{2, 1}, r.BlocksSizes())
	assert.Equal(t, Indexed, r.Power())

	// Hints survive a split on both sides.
	left, right := r.DivideAt(1)
	assert.Equal(t, Adaptive, left.Policy())
	assert.Equal(t, Adaptive, right.Policy())
}

func TestSliceIterNext(t *testing.T) {
	it := NewSliceIter([]int{7})

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")
}

func TestMapIter(t *testing.T) {
	inner := NewSliceIter([]int{1, 2, 3})
	it := NewMapIter[int, int](inner, func(v int) int { return v * v })

	assert.Equal(t, []int{1, 4, 9}, Drain[int](it))
}
