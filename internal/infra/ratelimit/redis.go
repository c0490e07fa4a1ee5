package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobdesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// The window start is part of the Redis key, so the stored value is a
// bare counter and the script only has to bound its lifetime. Reset
// time is derived from the wall clock on our side, the same way the
// memory backend does it.
var windowCountScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return n
`)

func NewRedisLimiter(addr, password string, db int, now func() time.Time) (domain.RateLimiter, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	if now == nil {
		now = time.Now
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisLimiter{client: client, now: now}, nil
}

func (r *redisLimiter) Allow(ctx context.Context, key domain.ClientKey, limit int, window time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	if window <= 0 {
		window = time.Second
	}
	now := r.now()
	resetAt := now.Truncate(window).Add(window)
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, resetAt.Unix())
	// Keep the counter one second past its window so a slow script
	// never expires a live slot.
	ttlSeconds := int64(window/time.Second) + 1

	count, err := windowCountScript.Run(ctx, r.client, []string{counterKey}, ttlSeconds).Int64()
	if err != nil {
		return domain.RateLimitDecision{}, err
	}
	if count > int64(limit) {
		return domain.RateLimitDecision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}, nil
	}
	return domain.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count),
		ResetAt:   resetAt,
	}, nil
}
