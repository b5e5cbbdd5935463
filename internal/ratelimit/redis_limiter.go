package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"
)

// RedisLimiter shares the window counters between server instances.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	opts   Options
}

func NewRedisLimiter(client rueidis.Client, prefix string, opts Options) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		opts:   opts,
	}
}

// Allow pipelines INCR with EXPIRE NX on every call. A key left without a
// TTL by an earlier failure gets one on the next request, so a counter can
// never outlive its window. Requires Redis 7.0 or newer.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.prefix + key

	seconds := int64(r.opts.Window.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	// A client hanging up must not split the pair.
	ctx = context.WithoutCancel(ctx)
	results := r.client.DoMulti(ctx,
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Expire().Key(redisKey).Seconds(seconds).Nx().Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return false, fmt.Errorf("incrementing rate limit counter: %w", err)
	}
	if err := results[1].Error(); err != nil {
		return false, fmt.Errorf("setting rate limit window: %w", err)
	}

	return count <= int64(r.opts.Limit), nil
}
