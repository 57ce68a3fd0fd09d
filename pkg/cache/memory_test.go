package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheBasicOperations(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	ctx := context.Background()

	_, err := c.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	value, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "key"))
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Без TTL запись живёт
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))
	time.Sleep(20 * time.Millisecond)
	_, err = c.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryCachePatterns(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "solve:dinic:abc", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "solve:goldberg_tarjan:abc", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "other:abc", []byte("3"), time.Minute))

	keys, err := c.Keys(ctx, "solve:*")
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	deleted, err := c.DeleteByPattern(ctx, "solve:*")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	exists, err := c.Exists(ctx, "other:abc")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCacheStats(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Minute))
	_, _ = c.Get(ctx, "key")
	_, _ = c.Get(ctx, "miss")

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, stats.Backend)
	assert.Equal(t, int64(1), stats.Keys)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRate(), 1e-9)
}

func TestMemoryCacheMaxEntries(t *testing.T) {
	c := NewMemoryCache(2, 0)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "c", []byte("3"), time.Minute))

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.Keys, int64(2))
}

func TestMemoryCacheClosed(t *testing.T) {
	c := NewMemoryCache(0, time.Minute)
	require.NoError(t, c.Close())

	_, err := c.Get(context.Background(), "key")
	assert.ErrorIs(t, err, ErrCacheClosed)
	assert.ErrorIs(t, c.Set(context.Background(), "key", nil, 0), ErrCacheClosed)

	// Повторное закрытие безопасно
	assert.NoError(t, c.Close())
}
