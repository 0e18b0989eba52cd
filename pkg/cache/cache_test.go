package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, int]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Size())
}

func TestCacheDelete(t *testing.T) {
	c := New[string, string]()
	c.Set("a", "x")
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestCacheClear(t *testing.T) {
	c := New[int, int]()
	c.Set(1, 1)
	c.Set(2, 2)
	c.Clear()

	assert.Equal(t, 0, c.Size())
}
