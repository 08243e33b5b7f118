package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountCache guarda totales de catálogo con una vigencia corta para no
// ejecutar COUNT(*) en cada página.
type CountCache interface {
	Get(key string) (int64, bool)
	Set(key string, total int64, ttl time.Duration)
}

type memoryCountCache struct {
	mu    sync.Mutex
	items map[string]countEntry
}

type countEntry struct {
	total     int64
	expiresAt time.Time
}

func NewMemoryCountCache() CountCache {
	return &memoryCountCache{
		items: make(map[string]countEntry),
	}
}

func (c *memoryCountCache) Get(key string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return 0, false
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, key)
		return 0, false
	}
	return entry.total, true
}

func (c *memoryCountCache) Set(key string, total int64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" || ttl <= 0 {
		return
	}
	c.items[key] = countEntry{
		total:     total,
		expiresAt: time.Now().UTC().Add(ttl),
	}
}

type redisCountCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCountCache(client *redis.Client) CountCache {
	if client == nil {
		return nil
	}
	return &redisCountCache{
		client: client,
		prefix: "catalog:count:",
	}
}

func (c *redisCountCache) Get(key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return 0, false
	}
	total, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

func (c *redisCountCache) Set(key string, total int64, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+key, strconv.FormatInt(total, 10), ttl).Err()
}
