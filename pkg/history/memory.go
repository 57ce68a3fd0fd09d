package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository хранит историю в памяти (для тестов и standalone использования)
type MemoryRepository struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryRepository создаёт in-memory хранилище истории
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save сохраняет запись
func (r *MemoryRepository) Save(ctx context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

// SaveMany сохраняет записи атомарно
func (r *MemoryRepository) SaveMany(ctx context.Context, records []*Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]*Record, 0, len(records))
	for _, record := range records {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now()
		}
		copied := *record
		stored = append(stored, &copied)
	}
	r.records = append(r.records, stored...)
	return nil
}

// GetByID возвращает запись по идентификатору
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			result := *rec
			return &result, nil
		}
	}
	return nil, ErrNotFound
}

// List возвращает записи, новые первыми
func (r *MemoryRepository) List(ctx context.Context, limit, offset int) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]*Record, len(r.records))
	copy(sorted, r.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	result := make([]*Record, len(sorted))
	for i, rec := range sorted {
		copied := *rec
		result[i] = &copied
	}
	return result, nil
}

// DeleteOlderThan удаляет записи старше указанного момента
func (r *MemoryRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var kept []*Record
	var deleted int64
	for _, rec := range r.records {
		if rec.CreatedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}

// Close освобождает ресурсы (no-op)
func (r *MemoryRepository) Close() error {
	return nil
}
