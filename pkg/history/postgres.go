package history

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"maxflow/pkg/database"
)

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir каталог миграций внутри Migrations
const MigrationsDir = "migrations"

// PostgresRepository хранит историю вычислений в PostgreSQL
type PostgresRepository struct {
	db database.DB
}

// NewPostgresRepository создаёт postgres-хранилище истории
func NewPostgresRepository(db database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate применяет миграции схемы истории
func Migrate(ctx context.Context, db *database.PostgresDB) error {
	return database.NewMigrator(db.Pool(), Migrations, MigrationsDir).Up(ctx)
}

// Save сохраняет запись
func (r *PostgresRepository) Save(ctx context.Context, record *Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	const query = `
		INSERT INTO computations (id, algorithm, max_flow, vertices, edges, source, sink, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		record.ID, record.Algorithm, record.MaxFlow,
		record.Vertices, record.Edges, record.Source, record.Sink,
		record.DurationMs, record.CreatedAt,
	)
	return err
}

// SaveMany сохраняет записи в одной транзакции
func (r *PostgresRepository) SaveMany(ctx context.Context, records []*Record) error {
	if len(records) == 0 {
		return nil
	}

	const query = `
		INSERT INTO computations (id, algorithm, max_flow, vertices, edges, source, sink, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, record := range records {
			if record.ID == uuid.Nil {
				record.ID = uuid.New()
			}
			if record.CreatedAt.IsZero() {
				record.CreatedAt = time.Now()
			}
			if _, err := tx.Exec(ctx, query,
				record.ID, record.Algorithm, record.MaxFlow,
				record.Vertices, record.Edges, record.Source, record.Sink,
				record.DurationMs, record.CreatedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID возвращает запись по идентификатору
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	const query = `
		SELECT id, algorithm, max_flow, vertices, edges, source, sink, duration_ms, created_at
		FROM computations
		WHERE id = $1`

	var rec Record
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Algorithm, &rec.MaxFlow,
		&rec.Vertices, &rec.Edges, &rec.Source, &rec.Sink,
		&rec.DurationMs, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List возвращает записи, новые первыми
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Record, error) {
	const query = `
		SELECT id, algorithm, max_flow, vertices, edges, source, sink, duration_ms, created_at
		FROM computations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Algorithm, &rec.MaxFlow,
			&rec.Vertices, &rec.Edges, &rec.Source, &rec.Sink,
			&rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// DeleteOlderThan удаляет записи старше указанного момента
func (r *PostgresRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM computations WHERE created_at < $1`

	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Close освобождает ресурсы хранилища
func (r *PostgresRepository) Close() error {
	r.db.Close()
	return nil
}
