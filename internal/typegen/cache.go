package typegen

import "sync"

type cacheKey struct {
	field  FieldDescriptor
	onType string
	config uint64
}

// Cache memoizes ResolveFieldType. Results depend only on the descriptor,
// the owning type and the configuration, so they never go stale.
type Cache struct {
	g    *Generator
	hash uint64

	mu      sync.Mutex
	entries map[cacheKey]string
}

func NewCache(g *Generator) *Cache {
	return &Cache{
		g:       g,
		hash:    g.cfg.Hash(),
		entries: make(map[cacheKey]string),
	}
}

func (c *Cache) ResolveFieldType(field FieldDescriptor, onType string) string {
	key := cacheKey{field: field, onType: onType, config: c.hash}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := c.g.ResolveFieldType(field, onType)
	c.entries[key] = v
	return v
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
