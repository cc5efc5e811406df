package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/redis/go-redis/v9"
)

const (
	fieldValue    = "v"
	fieldDeadline = "abs"
	fieldSliding  = "sld"
)

// RedisStore keeps each entry in a hash holding the payload, its absolute
// deadline (unix ms) and its sliding window (ms). The key TTL is always
// min(sliding, time left until the deadline); reads push it forward.
type RedisStore struct {
	client redis.UniversalClient
	clock  timex.Clock
}

func NewRedisStore(client redis.UniversalClient, clock timex.Clock) *RedisStore {
	return &RedisStore{client: client, clock: clock}
}

// NewRedisClient parses url and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	opt.ReadTimeout = 2 * time.Second
	opt.WriteTimeout = 2 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	vals, err := s.client.HMGet(ctx, key, fieldValue, fieldDeadline, fieldSliding).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis get error: %w", err)
	}
	if len(vals) != 3 || vals[0] == nil || vals[1] == nil {
		return nil, false, nil
	}

	payload, _ := vals[0].(string)
	deadlineMs, err := strconv.ParseInt(fmt.Sprint(vals[1]), 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("redis entry %q: bad deadline: %w", key, err)
	}
	var slidingMs int64
	if vals[2] != nil {
		slidingMs, _ = strconv.ParseInt(fmt.Sprint(vals[2]), 10, 64)
	}

	now := s.clock.Now()
	deadline := time.UnixMilli(deadlineMs)
	if !now.Before(deadline) {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return nil, false, fmt.Errorf("redis delete error: %w", err)
		}
		return nil, false, nil
	}

	opts := EntryOptions{Sliding: time.Duration(slidingMs) * time.Millisecond}
	if err := s.client.PExpire(ctx, key, opts.ttl(now, deadline)).Err(); err != nil {
		return nil, false, fmt.Errorf("redis expire error: %w", err)
	}
	return []byte(payload), true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, opts EntryOptions) error {
	now := s.clock.Now()
	deadline := now.Add(opts.Absolute)
	ttl := opts.ttl(now, deadline)
	if ttl <= 0 {
		return errors.New("cache entry options give a non-positive lifetime")
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldValue, value,
		fieldDeadline, deadline.UnixMilli(),
		fieldSliding, opts.Sliding.Milliseconds(),
	)
	pipe.PExpire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}
