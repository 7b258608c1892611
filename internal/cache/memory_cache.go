package cache

import (
	"sync"
	"time"

	"github.com/epeers/overlapalert/internal/models"
)

// MemoryCache provides an in-memory L1 cache for fund lookups. Negative
// lookups (ticker unknown) are cached too, so repeated analyses of a
// portfolio with a bad ticker don't hammer the backend.
type MemoryCache struct {
	funds  map[string]fundEntry
	fundMu sync.RWMutex
}

type fundEntry struct {
	fund      *models.FundData // nil for a cached "not found"
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		funds: make(map[string]fundEntry),
	}
}

// GetFund retrieves a cached lookup result if still fresh. The second return
// value reports whether the cache held an entry at all; the fund itself is
// nil for a cached negative lookup.
func (c *MemoryCache) GetFund(ticker string) (*models.FundData, bool) {
	c.fundMu.RLock()
	defer c.fundMu.RUnlock()

	entry, exists := c.funds[ticker]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.fund, true
}

// SetFund caches a lookup result until expiresAt. Pass a nil fund to cache a
// negative lookup.
func (c *MemoryCache) SetFund(ticker string, fund *models.FundData, expiresAt time.Time) {
	c.fundMu.Lock()
	defer c.fundMu.Unlock()

	c.funds[ticker] = fundEntry{
		fund:      fund,
		expiresAt: expiresAt,
	}
}

// InvalidateFund removes a ticker from the cache
func (c *MemoryCache) InvalidateFund(ticker string) {
	c.fundMu.Lock()
	defer c.fundMu.Unlock()

	delete(c.funds, ticker)
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.fundMu.Lock()
	c.funds = make(map[string]fundEntry)
	c.fundMu.Unlock()
}
