package reconcile

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// VersionedLedger is a Ledger that exposes a mutation counter.
type VersionedLedger interface {
	Ledger
	Revision() uint64
}

// Cache memoizes the latest report per register import and ledger revision.
type Cache struct {
	mu     sync.RWMutex
	key    string
	report *Report
	sf     singleflight.Group
}

// NewCache creates an empty report cache.
func NewCache() *Cache {
	return &Cache{}
}

// CacheKey returns the key a report for this pair is stored under.
func CacheKey(reg Register, led VersionedLedger) string {
	return fmt.Sprintf("%s|%s|%d", reg.ID(), led.Meta().SessionID, led.Revision())
}

// Get returns the cached report for the current register and ledger state,
// computing it if the cache is stale. Concurrent callers for the same key
// share one computation.
func (c *Cache) Get(reg Register, led VersionedLedger) *Report {
	key := CacheKey(reg, led)

	// Fast path: report for the current state already built
	c.mu.RLock()
	if c.report != nil && c.key == key {
		report := c.report
		c.mu.RUnlock()
		return report
	}
	c.mu.RUnlock()

	result, _, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		if c.report != nil && c.key == key {
			report := c.report
			c.mu.RUnlock()
			return report, nil
		}
		c.mu.RUnlock()

		report := Reconcile(reg, led)

		c.mu.Lock()
		c.key = key
		c.report = report
		c.mu.Unlock()

		return report, nil
	})

	return result.(*Report)
}

// Invalidate drops the cached report.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.key = ""
	c.report = nil
	c.mu.Unlock()
}
