package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/aqualens/backend/internal/domain"
)

// cacheItem represents a single cached report with expiration
type cacheItem struct {
	Report     domain.AnalysisReport
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory report cache with TTL support.
// It implements domain.ReportCache.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory report cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a report from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.AnalysisReport, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	report := item.Report
	return &report, nil
}

// Set stores a report in the cache with TTL. The report is deep-copied via
// a JSON round trip so later callers cannot mutate the cached value.
func (c *MemoryCache) Set(ctx context.Context, key string, report *domain.AnalysisReport, ttl time.Duration) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return err
	}

	var stored domain.AnalysisReport
	if err := json.Unmarshal(jsonData, &stored); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Report:     stored,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a report from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of cached reports (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
