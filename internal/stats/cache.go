// internal/stats/cache.go
// Cache hasil agregasi dengan expiry absolut (bukan sliding window).
// Advisory saja: miss/expired tinggal recompute, cache bukan system of record.

package stats

import (
	"sync"
	"time"

	"nearmiss-api/internal/util"
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Cache adalah satu-satunya shared mutable state di jalur statistik.
// Race menulis key yang sama benign: hasil recompute untuk key identik
// deterministik, last-writer-wins tidak mengubah apa pun.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock util.Clock
	data  map[string]cacheEntry
}

func NewCache(ttl time.Duration) *Cache {
	return NewCacheWithClock(ttl, util.RealClock{})
}

func NewCacheWithClock(ttl time.Duration, clock util.Clock) *Cache {
	return &Cache{
		ttl:   ttl,
		clock: clock,
		data:  make(map[string]cacheEntry),
	}
}

// Get mengembalikan nilai selama belum expired. Entry expired langsung
// dibuang (lazy eviction) supaya map tidak menumpuk key basi.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.clock.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check: Set yang concurrent bisa saja sudah me-refresh entry.
		if cur, still := c.data[key]; still && c.clock.Now().After(cur.expiresAt) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.data[key] = cacheEntry{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Purge mengosongkan cache, return jumlah entry yang dibuang.
func (c *Cache) Purge() int {
	c.mu.Lock()
	n := len(c.data)
	c.data = make(map[string]cacheEntry)
	c.mu.Unlock()
	return n
}

// Entries menghitung entry yang masih hidup (untuk endpoint admin).
func (c *Cache) Entries() int {
	now := c.clock.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, e := range c.data {
		if !now.After(e.expiresAt) {
			n++
		}
	}
	return n
}
