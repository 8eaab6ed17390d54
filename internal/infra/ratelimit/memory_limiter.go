package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// sweepInterval is how often idle callers are evicted.
const sweepInterval = time.Minute

// window holds the request times of one caller in unix ms, oldest first.
type window struct {
	times    []int64
	windowMs int64
}

// MemoryLimiter is a single-node sliding-window limiter, used when Redis is not configured.
type MemoryLimiter struct {
	mu        sync.Mutex
	limits    limits
	buckets   map[string]*window
	lastSweep int64
	now       func() time.Time
}

// NewMemoryLimiter constructs an in-memory limiter with the provided per-bucket limits.
func NewMemoryLimiter(bucketLimits map[string]Limit) *MemoryLimiter {
	return &MemoryLimiter{
		limits:  limits(bucketLimits),
		buckets: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records the request and reports whether it fits the bucket's budget. Denied
// requests are not recorded.
func (l *MemoryLimiter) Allow(_ context.Context, bucket, key string) (bool, error) {
	if bucket == "" || key == "" {
		return false, errors.New("bucket and key required")
	}

	lim := l.limits.get(bucket)
	nowMs := l.now().UnixMilli()
	windowStart := nowMs - lim.Window.Milliseconds()
	k := limitKey(bucket, key)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(nowMs)

	w, ok := l.buckets[k]
	if !ok {
		w = &window{windowMs: lim.Window.Milliseconds()}
	}
	w.times = trim(w.times, windowStart)

	if len(w.times) >= lim.Limit {
		if len(w.times) == 0 {
			delete(l.buckets, k)
		} else {
			l.buckets[k] = w
		}

		return false, nil
	}

	w.times = append(w.times, nowMs)
	l.buckets[k] = w

	return true, nil
}

// size reports how many callers are currently tracked.
func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// sweep drops callers whose newest request left their window. Callers hold l.mu.
func (l *MemoryLimiter) sweep(nowMs int64) {
	if nowMs-l.lastSweep < sweepInterval.Milliseconds() {
		return
	}
	l.lastSweep = nowMs

	for k, w := range l.buckets {
		if len(w.times) == 0 || w.times[len(w.times)-1] <= nowMs-w.windowMs {
			delete(l.buckets, k)
		}
	}
}

func trim(times []int64, windowStart int64) []int64 {
	i := 0
	for i < len(times) && times[i] <= windowStart {
		i++
	}

	return times[i:]
}
