package charts

import (
	"sync"
	"time"
)

// RenderCache memoizes rendered chart HTML so repeated dashboard loads are
// cheap.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// The dashboard renders a handful of charts whose keys change with the data
// hash, so stale keys accumulate. The cache sweeps expired entries on write
// and evicts the oldest entry once the bound is hit.
const maxCachedRenders = 64

// TTLCache is an in-memory render cache with per-entry expiry and a fixed
// size bound.
type TTLCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cachedRender
}

type cachedRender struct {
	html    string
	expires time.Time
}

// NewTTLCache builds a cache with the provided TTL. A non-positive TTL
// disables caching entirely.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[string]cachedRender),
	}
}

// GetOrRender returns a cached entry or renders and stores a new one.
func (c *TTLCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if html, ok := c.get(key); ok {
		return html, nil
	}
	html, err := render()
	if err != nil {
		return "", err
	}
	c.set(key, html)
	return html, nil
}

// Len reports how many entries the cache currently holds, expired or not.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TTLCache) get(key string) (string, bool) {
	if c == nil || c.ttl <= 0 {
		return "", false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		if ok {
			c.mu.Lock()
			delete(c.entries, key)
			c.mu.Unlock()
		}
		return "", false
	}
	return entry.html, true
}

func (c *TTLCache) set(key, html string) {
	if c == nil || c.ttl <= 0 {
		return
	}
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= maxCachedRenders {
		oldestKey := ""
		var oldest time.Time
		for k, entry := range c.entries {
			if oldestKey == "" || entry.expires.Before(oldest) {
				oldestKey = k
				oldest = entry.expires
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = cachedRender{
		html:    html,
		expires: now.Add(c.ttl),
	}
}
