// Package history persists a record of every max-flow computation so
// operators can audit and compare runs.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound запись не найдена
var ErrNotFound = errors.New("history record not found")

// Record запись об одном вычислении максимального потока
type Record struct {
	ID         uuid.UUID `json:"id"`
	Algorithm  string    `json:"algorithm"`
	MaxFlow    int64     `json:"max_flow"`
	Vertices   int       `json:"vertices"`
	Edges      int       `json:"edges"`
	Source     int64     `json:"source"`
	Sink       int64     `json:"sink"`
	DurationMs float64   `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repository хранилище истории вычислений
type Repository interface {
	// Save сохраняет запись. Пустой ID генерируется автоматически.
	Save(ctx context.Context, record *Record) error
	// SaveMany сохраняет записи атомарно: либо все, либо ни одной
	SaveMany(ctx context.Context, records []*Record) error
	// GetByID возвращает запись по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	// List возвращает записи, новые первыми
	List(ctx context.Context, limit, offset int) ([]*Record, error)
	// DeleteOlderThan удаляет записи старше указанного момента
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
	// Close освобождает ресурсы хранилища
	Close() error
}
