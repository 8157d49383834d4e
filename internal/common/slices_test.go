package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}

func TestSingle(t *testing.T) {
	v, ok := Single([]int{7})
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = Single([]int(nil))
	assert.False(t, ok)

	_, ok = Single([]int{1, 2})
	assert.False(t, ok, "more than one element is not single")
}
