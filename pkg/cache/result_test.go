package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCacheRoundTrip(t *testing.T) {
	memory := NewMemoryCache(0, 0)
	defer memory.Close()
	rc := NewResultCache(memory, time.Minute)
	ctx := context.Background()

	_, ok, err := rc.Get(ctx, "hash", "dinic")
	require.NoError(t, err)
	assert.False(t, ok)

	result := &CachedResult{
		MaxFlow:   11,
		Algorithm: "dinic",
		Flows: []CachedEdgeFlow{
			{From: 0, To: 1, Capacity: 7, Flow: 7},
			{From: 0, To: 2, Capacity: 4, Flow: 4},
		},
	}
	require.NoError(t, rc.Set(ctx, "hash", result, 0))

	got, ok, err := rc.Get(ctx, "hash", "dinic")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(11), got.MaxFlow)
	assert.Equal(t, result.Flows, got.Flows)
	assert.False(t, got.ComputedAt.IsZero())

	// Другой алгоритм кэшируется отдельно
	_, ok, err = rc.Get(ctx, "hash", "goldberg_tarjan")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResultCacheCorruptEntry(t *testing.T) {
	memory := NewMemoryCache(0, 0)
	defer memory.Close()
	rc := NewResultCache(memory, time.Minute)
	ctx := context.Background()

	key := BuildSolveKey("hash", "dinic")
	require.NoError(t, memory.Set(ctx, key, []byte("not json"), time.Minute))

	// Повреждённая запись трактуется как промах и удаляется
	_, ok, err := rc.Get(ctx, "hash", "dinic")
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err := memory.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestResultCacheInvalidate(t *testing.T) {
	memory := NewMemoryCache(0, 0)
	defer memory.Close()
	rc := NewResultCache(memory, time.Minute)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "hash", &CachedResult{Algorithm: "dinic"}, 0))
	require.NoError(t, rc.Set(ctx, "hash", &CachedResult{Algorithm: "goldberg_tarjan"}, 0))

	require.NoError(t, rc.Invalidate(ctx, "hash"))

	_, ok, err := rc.Get(ctx, "hash", "dinic")
	require.NoError(t, err)
	assert.False(t, ok)
}
