package mocks

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCacheMiss = errors.New("CACHE_MISS")

// Cache is an in-memory stand-in for the Redis cache used in tests.
type Cache struct {
	mu     sync.Mutex
	values map[string]string
}

func NewCache() *Cache {
	return &Cache{values: map[string]string{}}
}

func (c *Cache) Ping(_ context.Context) error {
	return nil
}

func (c *Cache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return value, nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}
