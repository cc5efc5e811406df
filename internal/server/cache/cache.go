package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/logging"
)

// Cache wraps a Store with the entry options applied to every write.
// Backend failures never reach the caller: reads degrade to a miss and
// writes are dropped, both logged at Warn.
type Cache struct {
	store   Store
	opts    EntryOptions
	metrics *Metrics
	logger  logging.Logger
}

func New(store Store, opts EntryOptions, metrics *Metrics, logger logging.Logger) *Cache {
	if metrics == nil {
		metrics, _ = NewMetrics(nil)
	}
	return &Cache{
		store:   store,
		opts:    opts,
		metrics: metrics,
		logger:  logger.With("module", "cache"),
	}
}

// Key builds the cache key of an entity, e.g. Key("Product", 5) is "ProductId=5".
func Key(entity string, id any) string {
	return fmt.Sprintf("%sId=%v", entity, id)
}

// Get returns the value cached under key. A missing key, a backend error
// and a payload that does not decode into T all report ok=false.
func Get[T any](ctx context.Context, c *Cache, key string) (value T, ok bool) {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.metrics.errors.WithLabelValues("get").Inc()
		c.logger.Warn(ctx, "cache get failed", "key", key, "error", err)
		c.metrics.misses.Inc()
		return value, false
	}
	if !found {
		c.metrics.misses.Inc()
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		c.metrics.errors.WithLabelValues("decode").Inc()
		c.logger.Warn(ctx, "cache entry does not decode", "key", key, "error", err)
		c.metrics.misses.Inc()
		var zero T
		return zero, false
	}

	c.metrics.hits.Inc()
	return value, true
}

// Set stores value under key with the cache's entry options.
func Set[T any](ctx context.Context, c *Cache, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.metrics.errors.WithLabelValues("encode").Inc()
		c.logger.Warn(ctx, "cache entry does not encode", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, data, c.opts); err != nil {
		c.metrics.errors.WithLabelValues("set").Inc()
		c.logger.Warn(ctx, "cache set failed", "key", key, "error", err)
	}
}

// Remove deletes key. Removing an absent key is a no-op.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.store.Remove(ctx, key); err != nil {
		c.metrics.errors.WithLabelValues("remove").Inc()
		c.logger.Warn(ctx, "cache remove failed", "key", key, "error", err)
	}
}
