package charts

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheStoresEntry(t *testing.T) {
	cache := NewTTLCache(10 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	val1, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	val2, err := cache.GetOrRender("key", render)
	require.NoError(t, err)

	assert.Equal(t, "html", val1)
	assert.Equal(t, val1, val2)
	assert.Equal(t, 1, calls)
}

func TestTTLCacheSweepsExpiredAndStaysBounded(t *testing.T) {
	cache := NewTTLCache(time.Hour)
	render := func() (string, error) { return "html", nil }

	for i := 0; i < maxCachedRenders+10; i++ {
		_, err := cache.GetOrRender("chart-"+strconv.Itoa(i), render)
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, cache.Len(), maxCachedRenders)

	expired := NewTTLCache(time.Nanosecond)
	_, err := expired.GetOrRender("stale", render)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = expired.GetOrRender("fresh", render)
	require.NoError(t, err)
	assert.Equal(t, 1, expired.Len())
}

func TestTTLCacheExpires(t *testing.T) {
	cache := NewTTLCache(2 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = cache.GetOrRender("key", render)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}
