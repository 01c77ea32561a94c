package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter answers whether a caller identified by key may proceed.
// Implementations fail open: a backend error never blocks a request.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// ===============================
// In-memory sliding window
// ===============================

type MemoryLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		hits:   make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.hits[key] = recent
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}
