package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSetInvalidate(t *testing.T) {
	c := New[string, int](10, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Invalidate("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New[string, int](10, 20*time.Millisecond)
	c.Set("a", 1)

	time.Sleep(60 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, string](10, time.Minute)
	calls := 0
	load := func() (string, error) {
		calls++
		return "value", nil
	}

	v, hit, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "value", v)

	v, hit, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)
}

func TestCache_GetOrLoad_ErrorNotCached(t *testing.T) {
	c := New[string, string](10, time.Minute)
	boom := errors.New("boom")

	_, _, err := c.GetOrLoad("k", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	v, _, err := c.GetOrLoad("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestCache_Purge(t *testing.T) {
	c := New[int, int](0, time.Minute)
	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}
