package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositorySaveAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	record := &Record{
		Algorithm:  "dinic",
		MaxFlow:    11,
		Vertices:   6,
		Edges:      8,
		Source:     0,
		Sink:       5,
		DurationMs: 0.42,
	}
	require.NoError(t, repo.Save(ctx, record))

	// Идентификатор и время проставляются автоматически
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.MaxFlow, got.MaxFlow)
	assert.Equal(t, record.Algorithm, got.Algorithm)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositorySaveMany(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	records := []*Record{
		{Algorithm: "dinic", MaxFlow: 11},
		{Algorithm: "goldberg_tarjan", MaxFlow: 11},
	}
	require.NoError(t, repo.SaveMany(ctx, records))

	for _, record := range records {
		assert.NotEqual(t, uuid.Nil, record.ID)
	}

	listed, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	require.NoError(t, repo.SaveMany(ctx, nil))
}

func TestMemoryRepositoryList(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &Record{
			Algorithm: "dinic",
			MaxFlow:   int64(i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Новые записи первыми
	assert.Equal(t, int64(4), records[0].MaxFlow)
	assert.Equal(t, int64(3), records[1].MaxFlow)

	page, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].MaxFlow)

	empty, err := repo.List(ctx, 3, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryRepositoryDeleteOlderThan(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, &Record{Algorithm: "dinic", CreatedAt: old}))
	require.NoError(t, repo.Save(ctx, &Record{Algorithm: "dinic"}))

	deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	records, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
