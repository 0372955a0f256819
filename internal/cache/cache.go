// Package cache provides the small in-memory caches the client keeps
// between explicit refreshes: lazily fetched item lists and merged
// position data. Staleness between refreshes is tolerated; callers
// invalidate on refresh/archive actions. Nothing here is persisted.
package cache

// Cache is a keyed map with explicit invalidation.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: map[K]V{}}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.entries[key] = value
}

func (c *Cache[K, V]) Invalidate(key K) {
	delete(c.entries, key)
}

func (c *Cache[K, V]) InvalidateAll() {
	c.entries = map[K]V{}
}

func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Keys returns the cached keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out
}
