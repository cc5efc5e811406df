// Package services contains the server's business logic: account handling
// with access and refresh tokens, and the cached entity services of the
// catalog, ratings and orders.
package services

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
)

// readThrough answers from the cache when key holds a value and otherwise
// calls load, caching what it returns. Errors from load, including
// common.ErrorNotFound, are returned as-is and nothing is cached.
func readThrough[T any](ctx context.Context, c *cache.Cache, key string, load func(ctx context.Context) (*T, error)) (*T, error) {
	if v, ok := cache.Get[*T](ctx, c, key); ok && v != nil {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}

	cache.Set(ctx, c, key, v)
	return v, nil
}
