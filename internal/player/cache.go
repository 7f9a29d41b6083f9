package player

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// idCache maps lowercased usernames to player ids. Only ids are cached so
// gold and holdings are always read fresh.
type idCache struct {
	lru *expirable.LRU[string, string]
}

func newIDCache(size int, ttl time.Duration) *idCache {
	return &idCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func cacheKey(username string) string {
	return strings.ToLower(username)
}

func (c *idCache) Get(username string) (string, bool) {
	return c.lru.Get(cacheKey(username))
}

func (c *idCache) Set(username, playerID string) {
	c.lru.Add(cacheKey(username), playerID)
}

func (c *idCache) Invalidate(username string) {
	c.lru.Remove(cacheKey(username))
}
