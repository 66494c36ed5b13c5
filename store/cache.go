package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const (
	cacheLogPrefix  = "cache"
	allRecordsKey   = "records"
	DefaultCacheTTL = 5 * time.Minute
)

// CachedStore keeps the result of ReadAll for a fixed freshness window.
// Appends go straight to the wrapped store and do not invalidate, so a new
// row shows up on the dashboard once the window expires.
type CachedStore struct {
	ResponseStore
	cache *cache.Cache
}

func NewCachedStore(inner ResponseStore, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		ResponseStore: inner,
		cache:         cache.New(ttl, 2*ttl),
	}
}

func (c *CachedStore) ReadAll(ctx context.Context) ([]schema.Record, error) {
	if x, found := c.cache.Get(allRecordsKey); found {
		return x.([]schema.Record), nil
	}

	records, err := c.ResponseStore.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(allRecordsKey, records)
	log.WithField("prefix", cacheLogPrefix).Debugf("cached %d records", len(records))
	return records, nil
}

// Prepare forwards to the wrapped store when it supports preparation.
func (c *CachedStore) Prepare(ctx context.Context, header []string) error {
	if p, ok := c.ResponseStore.(Preparer); ok {
		return p.Prepare(ctx, header)
	}
	return nil
}
