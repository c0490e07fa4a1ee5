package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobdesk/internal/domain"
)

// Windows are aligned to the wall clock: every request in the same
// window maps to the same slot, so a slot is just a counter whose
// expiry is baked into its key.
type slot struct {
	client domain.ClientKey
	until  int64
}

type memoryLimiter struct {
	mu       sync.Mutex
	now      func() time.Time
	counts   map[slot]int
	maxSlots int
}

type MemoryLimiterConfig struct {
	Now     func() time.Time
	MaxKeys int
}

func NewMemoryLimiter(cfg MemoryLimiterConfig) domain.RateLimiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 10000
	}
	return &memoryLimiter{
		now:      cfg.Now,
		counts:   make(map[slot]int),
		maxSlots: cfg.MaxKeys,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key domain.ClientKey, limit int, window time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	if window <= 0 {
		window = time.Second
	}
	now := m.now()
	resetAt := now.Truncate(window).Add(window)
	s := slot{client: key, until: resetAt.Unix()}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, live := m.counts[s]; !live && len(m.counts) >= m.maxSlots {
		m.sweep(now)
		if len(m.counts) >= m.maxSlots {
			return domain.RateLimitDecision{}, errors.New("rate limiter at capacity")
		}
	}

	count := m.counts[s] + 1
	if count > limit {
		return domain.RateLimitDecision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}, nil
	}
	m.counts[s] = count
	return domain.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count,
		ResetAt:   resetAt,
	}, nil
}

func (m *memoryLimiter) sweep(now time.Time) {
	cutoff := now.Unix()
	for s := range m.counts {
		if s.until <= cutoff {
			delete(m.counts, s)
		}
	}
}
