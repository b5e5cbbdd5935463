package ratelimit

import (
	"context"
	"time"
)

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Options struct {
	Limit  int
	Window time.Duration
}
