package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1, 3, 3))
	assert.False(t, IsInRange(1, 4, 3))
	assert.True(t, IsInRange(0.5, 0.7, 1.0))
	assert.True(t, IsDigit('7'))
	assert.False(t, IsDigit('a'))
	assert.False(t, IsDigit('７'))
}

func TestUnpack2(t *testing.T) {
	t.Parallel()

	a, b := Unpack2(strings.SplitN("12.5", ".", 2))
	assert.Equal(t, "12", a)
	assert.Equal(t, "5", b)

	a, b = Unpack2(strings.SplitN("12", ".", 2))
	assert.Equal(t, "12", a)
	assert.Empty(t, b)

	a, b = Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
