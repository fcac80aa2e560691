// Package ratelimit keeps one token bucket per key (user ID, client IP).
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// minIdleTTL is the shortest time an untouched bucket survives before cleanup drops it.
// A dropped bucket comes back full, so it must exceed the refill window.
const minIdleTTL = 10 * time.Minute

// Limiter hands out per-key rate.Limiters with the same limit and burst.
type Limiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket

	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing burst events at once and refilling at limit.
// A background goroutine evicts idle buckets every cleanupInterval; call Stop() on shutdown.
func New(limit rate.Limit, burst int, cleanupInterval time.Duration) *Limiter {
	l := newLimiter(limit, burst)
	if cleanupInterval > 0 {
		go l.cleanup(cleanupInterval)
	}
	return l
}

// PerMinute allows n events per minute with a burst of n.
func PerMinute(n int, cleanupInterval time.Duration) *Limiter {
	return New(rate.Limit(float64(n)/60), n, cleanupInterval)
}

// PerWindow allows n events per window with a burst of n. Used for slow
// quotas such as "10 generations per hour".
func PerWindow(n int, window time.Duration, cleanupInterval time.Duration) *Limiter {
	return New(rate.Every(window/time.Duration(max(n, 1))), n, cleanupInterval)
}

func newLimiter(limit rate.Limit, burst int) *Limiter {
	idle := minIdleTTL
	if limit > 0 {
		// Time for a drained bucket to refill completely.
		if full := time.Duration(float64(burst) / float64(limit) * float64(time.Second)).Round(time.Second); full > idle {
			idle = full
		}
	}
	return &Limiter{
		limit:   limit,
		burst:   burst,
		idleTTL: idle,
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// Allow consumes one token from key's bucket and reports whether it was available.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	return l.get(key, now).AllowN(now, 1)
}

// RetryAfter is the time one token takes to refill.
func (l *Limiter) RetryAfter() time.Duration {
	if l.limit <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / float64(l.limit)).Round(time.Millisecond)
}

// Stop terminates the background cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep(l.now())
		}
	}
}
