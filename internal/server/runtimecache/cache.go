// Package runtimecache provides a small in-process key–value cache. It is an
// explicitly constructed object whose lifetime is owned by whoever creates
// it, not a process-wide singleton; callers that need shared state pass the
// same instance around.
package runtimecache

import "sync"

// Cache is a concurrency-safe string-keyed store.
type Cache struct {
	mu   sync.RWMutex
	data map[string]any
}

func New() *Cache {
	return &Cache{data: make(map[string]any)}
}

// Set stores value under key, replacing any previous value.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// Get returns the value for key and whether it was present.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

// Delete removes key. Removing an absent key is a no-op.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]any)
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
