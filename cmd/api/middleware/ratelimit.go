package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/common/config"
	"github.com/noobgg-team/noobgg/common/ratelimit"
)

// RateLimit enforces the global and per-client fixed-window limits.
// Redis errors fail open: availability beats a missed limit check.
func RateLimit(limiter *ratelimit.Limiter, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || !cfg.Enabled {
				return next(c)
			}

			ctx := c.Request().Context()

			result, err := limiter.CheckGlobal(ctx, cfg.GlobalPerMin)
			if err != nil {
				return next(c)
			}
			if !result.Allowed {
				return tooManyRequests(c, result)
			}

			result, err = limiter.CheckClient(ctx, c.RealIP(), cfg.PerClientPerMin)
			if err != nil {
				return next(c)
			}
			if !result.Allowed {
				return tooManyRequests(c, result)
			}

			return next(c)
		}
	}
}

func tooManyRequests(c echo.Context, result *ratelimit.Result) error {
	return c.JSON(http.StatusTooManyRequests, map[string]any{
		"message":           "Too many requests. Please try again later.",
		"retryAfterSeconds": result.RetryAfterSeconds,
	})
}
