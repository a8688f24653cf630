package ratelimit

import (
	"context"
	"fmt"

	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/redis/go-redis/v9"
)

// Fixed-window counter. INCR and EXPIRE run atomically in one script so a
// crash between them can never leave a counter without a TTL.
const rateLimitScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = redis.call('INCR', key)
if current == 1 then
    redis.call('EXPIRE', key, window)
end

local ttl = redis.call('TTL', key)
if current > limit then
    return {0, current, limit, ttl}
end
return {1, current, limit, ttl}
`

// Result contains the outcome of a rate limit check
type Result struct {
	Allowed           bool
	CurrentCount      int64
	Limit             int64
	RetryAfterSeconds int64
}

// Limiter provides fixed-window rate limiting backed by Redis
type Limiter struct {
	redis  *redis.Client
	script *redis.Script
	log    *logger.Logger
}

// New creates a rate limiter
func New(redisClient *redis.Client, log *logger.Logger) *Limiter {
	return &Limiter{
		redis:  redisClient,
		script: redis.NewScript(rateLimitScript),
		log:    log,
	}
}

// CheckGlobal checks the service-wide limit over a one-minute window
func (l *Limiter) CheckGlobal(ctx context.Context, limit int64) (*Result, error) {
	return l.check(ctx, "rate_limit:global", limit, 60)
}

// CheckClient checks the per-client limit over a one-minute window.
// client is whatever identity the middleware extracted (usually remote IP).
func (l *Limiter) CheckClient(ctx context.Context, client string, limit int64) (*Result, error) {
	return l.check(ctx, fmt.Sprintf("rate_limit:client:%s", client), limit, 60)
}

func (l *Limiter) check(ctx context.Context, key string, limit int64, windowSec int) (*Result, error) {
	raw, err := l.script.Run(ctx, l.redis, []string{key}, limit, windowSec).Result()
	if err != nil {
		l.log.Error("rate limit check failed", "key", key, "error", err)
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	// Script returns {allowed, current, limit, retry_after}
	arr, ok := raw.([]interface{})
	if !ok || len(arr) != 4 {
		return nil, fmt.Errorf("unexpected script result format")
	}

	res := &Result{
		Allowed:           arr[0].(int64) == 1,
		CurrentCount:      arr[1].(int64),
		Limit:             arr[2].(int64),
		RetryAfterSeconds: arr[3].(int64),
	}

	if !res.Allowed {
		l.log.Warn("rate limit exceeded",
			"key", key,
			"current", res.CurrentCount,
			"limit", res.Limit,
			"retry_after", res.RetryAfterSeconds)
	}

	return res, nil
}
