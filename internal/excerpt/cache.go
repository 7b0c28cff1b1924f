package excerpt

import (
	"hash/fnv"

	"github.com/Paintersrp/notelist/internal/cache"
)

type cacheKey struct {
	id       string
	sum      uint64
	markdown bool
}

// Cache memoizes excerpts per note identity and content.
type Cache struct {
	lru *cache.LRU[cacheKey, Excerpt]
}

// NewCache returns a cache holding at most size excerpts.
func NewCache(size int) *Cache {
	return &Cache{lru: cache.NewLRU[cacheKey, Excerpt](size)}
}

// Get returns the excerpt for the note, computing it on a miss. A nil cache
// always computes.
func (c *Cache) Get(id, content string, markdown bool) Excerpt {
	if c == nil {
		return Extract(content, markdown)
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(content))
	key := cacheKey{id: id, sum: h.Sum64(), markdown: markdown}

	if ex, ok := c.lru.Get(key); ok {
		return ex
	}
	ex := Extract(content, markdown)
	c.lru.Put(key, ex)
	return ex
}

// Stats reports cache hits and misses.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.lru.Stats()
}
