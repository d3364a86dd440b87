package middleware

import (
	"meetbot/internal/metrics"
	"meetbot/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	// RequestsPerMin caps requests per client IP. Zero disables limiting.
	RequestsPerMin int
	Metrics        *metrics.Metrics
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l, metrics: cfg.Metrics}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
