package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 1, 3))
	assert.True(t, InRange(1, 3, 3))
	assert.False(t, InRange(1, 4, 3))
	assert.False(t, InRange(5, 4, 3))
}
