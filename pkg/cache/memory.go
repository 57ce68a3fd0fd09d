package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// memoryEntry запись in-memory кэша
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// expired проверяет, истекла ли запись
func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache потокобезопасный in-memory кэш с TTL и фоновой очисткой
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]*memoryEntry
	maxEntries int

	hits      int64
	misses    int64
	evictions int64

	janitorStop chan struct{}
	closeOnce   sync.Once
	closed      bool
}

// NewMemoryCache создаёт in-memory кэш.
// maxEntries <= 0 означает "без ограничения".
// cleanupInterval <= 0 отключает фоновую очистку.
func NewMemoryCache(maxEntries int, cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries:     make(map[string]*memoryEntry),
		maxEntries:  maxEntries,
		janitorStop: make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go c.janitor(cleanupInterval)
	}

	return c
}

// janitor периодически удаляет истёкшие записи
func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.janitorStop:
			return
		}
	}
}

// removeExpired удаляет все истёкшие записи
func (c *MemoryCache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
			c.evictions++
		}
	}
}

// Get возвращает значение по ключу
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrCacheClosed
	}

	e, ok := c.entries[key]
	if !ok || e.expired(time.Now()) {
		if ok {
			delete(c.entries, key)
			c.evictions++
		}
		c.misses++
		return nil, ErrKeyNotFound
	}

	c.hits++
	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, nil
}

// Set сохраняет значение с TTL. ttl <= 0 означает "без истечения".
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	// Простое вытеснение: при переполнении убираем истёкшие,
	// если не помогло — отклонять нельзя, удаляем произвольную запись
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			now := time.Now()
			for k, e := range c.entries {
				if e.expired(now) {
					delete(c.entries, k)
					c.evictions++
				}
			}
			for k := range c.entries {
				if len(c.entries) < c.maxEntries {
					break
				}
				delete(c.entries, k)
				c.evictions++
			}
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	entry := &memoryEntry{value: stored}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.entries[key] = entry
	return nil
}

// Delete удаляет ключ
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	delete(c.entries, key)
	return nil
}

// Exists проверяет существование ключа
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return false, ErrCacheClosed
	}

	e, ok := c.entries[key]
	return ok && !e.expired(time.Now()), nil
}

// Keys возвращает ключи по glob-паттерну (синтаксис path.Match)
func (c *MemoryCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrCacheClosed
	}

	now := time.Now()
	var keys []string
	for k, e := range c.entries {
		if e.expired(now) {
			continue
		}
		if ok, err := path.Match(pattern, k); err != nil {
			return nil, err
		} else if ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// DeleteByPattern удаляет ключи по glob-паттерну
func (c *MemoryCache) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrCacheClosed
	}

	var deleted int64
	for k := range c.entries {
		if ok, err := path.Match(pattern, k); err != nil {
			return deleted, err
		} else if ok {
			delete(c.entries, k)
			deleted++
		}
	}
	return deleted, nil
}

// Stats возвращает статистику кэша
func (c *MemoryCache) Stats(ctx context.Context) (*Stats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrCacheClosed
	}

	return &Stats{
		Backend:   BackendMemory,
		Keys:      int64(len(c.entries)),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}, nil
}

// Clear удаляет все записи
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheClosed
	}

	c.entries = make(map[string]*memoryEntry)
	return nil
}

// Close останавливает фоновую очистку и закрывает кэш
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.janitorStop)
		c.mu.Lock()
		c.closed = true
		c.entries = nil
		c.mu.Unlock()
	})
	return nil
}
