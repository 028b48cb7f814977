package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a rate limiter
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are evicted, 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucketLimiter is a per-key token bucket limiter.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu          sync.Mutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucketLimiter creates a limiter. A nil clock uses wall time.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// NewPerMinute allows limit requests per minute per key with a burst of limit.
func NewPerMinute(limit int, ttl time.Duration, maxBuckets int) *TokenBucketLimiter {
	if limit <= 0 {
		limit = 1
	}
	return NewTokenBucketLimiter(nil, Config{
		Rate:       float64(limit) / 60,
		Burst:      limit,
		TTL:        ttl,
		MaxBuckets: maxBuckets,
	})
}

// Allow reports whether key may proceed and takes a token if so.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			// таблица забита, новых клиентов не пускаем до чистки
			return false
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = min(b.tokens+dt.Seconds()*l.cfg.Rate, float64(l.cfg.Burst))
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Len returns the number of tracked keys.
func (l *TokenBucketLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// evictIdle runs at most once per half TTL (min one minute). Caller holds l.mu.
func (l *TokenBucketLimiter) evictIdle(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(l.cfg.TTL/2, time.Minute)
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now
	for k, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
