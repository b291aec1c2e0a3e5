package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"autonomax/config"
	domainerrors "autonomax/internal/domain/errors"
)

// visitorTTL is how long an idle client IP keeps its bucket.
const visitorTTL = 3 * time.Minute

// RateLimiters holds the per-IP token buckets of the API.
type RateLimiters struct {
	// Login guards credential checks.
	Login echo.MiddlewareFunc
	// Global applies to every /api route.
	Global echo.MiddlewareFunc
}

// NewRateLimiters builds both limiters from config. A limit of zero or less disables it.
func NewRateLimiters(cfg *config.Config) *RateLimiters {
	var login, global int
	if cfg.RateLimit != nil {
		login, global = cfg.RateLimit.LoginPerMinute, cfg.RateLimit.GlobalPerMinute
	}

	return &RateLimiters{
		Login:  PerMinute(login),
		Global: PerMinute(global),
	}
}

// PerMinute allows n requests per minute per client IP with a burst of n.
// Excess requests get 429 RATE_LIMITED.
func PerMinute(n int) echo.MiddlewareFunc {
	if n <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(n)),
		Burst:     n,
		ExpiresIn: visitorTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return domainerrors.ErrRateLimited
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
