package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterBlocksAfterMax(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow(ctx, "1.2.3.4") {
		t.Fatal("4th request should be blocked")
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	if !l.Allow(ctx, "a") {
		t.Fatal("first hit on a should pass")
	}
	if l.Allow(ctx, "a") {
		t.Fatal("second hit on a should be blocked")
	}
	if !l.Allow(ctx, "b") {
		t.Fatal("hit on b should pass")
	}
}

func TestMemoryLimiterWindowSlides(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	current := time.Now()
	l.now = func() time.Time { return current }

	if !l.Allow(ctx, "ip") {
		t.Fatal("first hit should pass")
	}
	if l.Allow(ctx, "ip") {
		t.Fatal("second hit inside window should be blocked")
	}

	current = current.Add(61 * time.Second)
	if !l.Allow(ctx, "ip") {
		t.Fatal("hit after window expiry should pass")
	}
}
