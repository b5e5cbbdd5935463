package ratelimit

import (
	"context"
	"sync"
	"time"
)

type MemoryLimiter struct {
	opts Options
	now  func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryLimiter(opts Options) *MemoryLimiter {
	return &MemoryLimiter{
		opts:    opts,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now)

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > m.opts.Window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.opts.Limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops buckets whose window has ended, at most once per window.
func (m *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) <= m.opts.Window {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.start) > m.opts.Window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
