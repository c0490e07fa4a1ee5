package domain

import (
	"context"
	"time"
)

// ClientKey identifies the party a rate budget is charged to.
type ClientKey string

// RateKeyForIP buckets anonymous traffic by source address.
func RateKeyForIP(ip string) ClientKey {
	return ClientKey("ip:" + ip)
}

// RateLimitDecision is a self-contained verdict: everything the HTTP
// layer needs for RateLimit-* and Retry-After headers is computed by
// the limiter, not reconstructed by callers. RetryAfter is zero on
// allowed decisions.
type RateLimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key ClientKey, limit int, window time.Duration) (RateLimitDecision, error)
}
