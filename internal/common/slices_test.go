package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsMultiple([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))

	_, ok := First([]string{})
	assert.False(t, ok)

	v, ok := First([]string{"万", "亿"})
	assert.True(t, ok)
	assert.Equal(t, "万", v)
}

func TestIndexFrom(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }
	s := []int{2, 3, 5, 6, 7}

	assert.Equal(t, 0, IndexFrom(s, 0, even))
	assert.Equal(t, 3, IndexFrom(s, 1, even))
	assert.Equal(t, 5, IndexFrom(s, 4, even))
	assert.Equal(t, 0, IndexFrom(s, -1, even))
	assert.Equal(t, 0, IndexFrom([]int(nil), 0, even))
}
