package holdings

import (
	"context"
	"strings"
	"time"

	"github.com/epeers/overlapalert/internal/cache"
	"github.com/epeers/overlapalert/internal/models"
	"github.com/epeers/overlapalert/internal/util"
	"golang.org/x/sync/singleflight"
)

// CachedResolver decorates a Resolver with an in-memory cache and request
// collapsing. The analysis engine resolves each entry once in the exposure
// pass and each distinct underlying ticker again in the sector pass, so a
// remote backend would otherwise see heavily overlapping lookups.
//
// Cached entries (including negative ones) expire at the next market close,
// when fund data providers publish updated baskets. Backend errors are never
// cached.
type CachedResolver struct {
	backend Resolver
	cache   *cache.MemoryCache
	group   singleflight.Group
	// now is swappable for tests
	now func() time.Time
}

// NewCachedResolver creates a CachedResolver over the given backend.
func NewCachedResolver(backend Resolver, memCache *cache.MemoryCache) *CachedResolver {
	return &CachedResolver{
		backend: backend,
		cache:   memCache,
		now:     time.Now,
	}
}

// Resolve returns the cached fund data for a ticker, consulting the backend
// on a miss. Concurrent lookups for the same ticker are collapsed into a
// single backend call.
func (r *CachedResolver) Resolve(ctx context.Context, ticker string) (*models.FundData, error) {
	key := strings.ToUpper(strings.TrimSpace(ticker))

	if fund, ok := r.cache.GetFund(key); ok {
		return fund, nil
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		// Re-check under the singleflight: another caller may have filled
		// the cache while we waited for the lock.
		if fund, ok := r.cache.GetFund(key); ok {
			return fund, nil
		}

		fund, err := r.backend.Resolve(ctx, key)
		if err != nil {
			return nil, err
		}

		r.cache.SetFund(key, fund, util.NextMarketDate(r.now()))
		return fund, nil
	})
	if err != nil {
		return nil, err
	}

	fund, _ := v.(*models.FundData)
	return fund, nil
}
