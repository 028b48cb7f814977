package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/logx"
)

const (
	rateLimitTTL        = 10 * time.Minute
	rateLimitMaxBuckets = 100_000
)

type rateLimitIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"http_rate_limited_total"`
}

// newRateLimitMiddleware returns nil when RATE_LIMIT_PER_MINUTE is 0.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	perMinute := in.Config.RateLimit.PerMinute
	if perMinute <= 0 {
		return nil
	}
	limiter := ratelimit.NewPerMinute(perMinute, rateLimitTTL, rateLimitMaxBuckets)
	return ratelimit.New(in.Logger, in.Counter, limiter, ratelimit.ClientIP)
}
