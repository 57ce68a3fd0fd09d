package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ResultCache специализированный кэш результатов вычислений максимального потока
type ResultCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// CachedResult кэшированный результат вычисления
type CachedResult struct {
	MaxFlow    int64            `json:"max_flow"`
	Algorithm  string           `json:"algorithm"`
	Iterations int              `json:"iterations"`
	DurationMs float64          `json:"duration_ms"`
	Flows      []CachedEdgeFlow `json:"flows,omitempty"`
	ComputedAt time.Time        `json:"computed_at"`
}

// CachedEdgeFlow поток на ребре в кэшированном результате
type CachedEdgeFlow struct {
	From     int64 `json:"from"`
	To       int64 `json:"to"`
	Capacity int64 `json:"capacity"`
	Flow     int64 `json:"flow"`
}

// NewResultCache создаёт кэш результатов
func NewResultCache(cache Cache, defaultTTL time.Duration) *ResultCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &ResultCache{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// Get получает кэшированный результат по хешу сети и алгоритму
func (rc *ResultCache) Get(ctx context.Context, networkHash, algorithm string) (*CachedResult, bool, error) {
	key := BuildSolveKey(networkHash, algorithm)

	data, err := rc.cache.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result CachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Повреждённый кэш — удаляем, ошибку удаления игнорируем намеренно
		_ = rc.cache.Delete(ctx, key) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}

	return &result, true, nil
}

// Set сохраняет результат в кэш
func (rc *ResultCache) Set(ctx context.Context, networkHash string, result *CachedResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = rc.defaultTTL
	}

	key := BuildSolveKey(networkHash, result.Algorithm)
	result.ComputedAt = time.Now()

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return rc.cache.Set(ctx, key, data, ttl)
}

// Invalidate удаляет кэш для сети (оба алгоритма)
func (rc *ResultCache) Invalidate(ctx context.Context, networkHash string) error {
	pattern := fmt.Sprintf("solve:*:%s", networkHash)
	_, err := rc.cache.DeleteByPattern(ctx, pattern)
	return err
}

// InvalidateAll удаляет весь кэш результатов
func (rc *ResultCache) InvalidateAll(ctx context.Context) (int64, error) {
	return rc.cache.DeleteByPattern(ctx, "solve:*")
}
