// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/metrics"
	"github.com/tomtom215/beacongate/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	// Rate limiting configuration, keyed by limiter name
	RateLimits        map[string]config.RateLimitRule
	RateLimitDisabled bool

	// RequestDeadline bounds each records request; 0 disables it
	RequestDeadline time.Duration
}

// DefaultChiMiddlewareConfig mirrors the public deployment: any origin,
// GET only, Content-Type and Authorization headers.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{http.MethodGet},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		CORSMaxAge:         86400,
		RateLimits:         map[string]config.RateLimitRule{},
	}
}

// NewChiMiddlewareConfig builds the middleware configuration from app config.
func NewChiMiddlewareConfig(cfg *config.Config) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	if len(cfg.Security.CORSOrigins) > 0 {
		c.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	c.RateLimits = cfg.RateLimit.Rules()
	c.RateLimitDisabled = cfg.Security.RateLimitDisabled
	c.RequestDeadline = cfg.RequestDeadline()
	return c
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		AllowCredentials: false,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// Deadline returns the records request deadline middleware.
func (m *ChiMiddleware) Deadline() func(http.Handler) http.Handler {
	return middleware.Deadline(m.config.RequestDeadline)
}

// RateLimit returns the per-IP limiter registered under name. Each call
// builds an independent counter, so call it once per route.
// Unknown names and disabled rate limiting yield a pass-through.
func (m *ChiMiddleware) RateLimit(name string) func(http.Handler) http.Handler {
	rule, ok := m.config.RateLimits[name]
	if m.config.RateLimitDisabled || !ok || rule.Requests <= 0 || rule.Window <= 0 {
		if !ok && !m.config.RateLimitDisabled {
			logging.Warn().Str("limiter", name).Msg("No rate limit rule configured")
		}
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		rule.Requests,
		rule.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded(name, rule)),
	)
}

// rateLimitExceeded writes the 429 envelope for limiter name.
func rateLimitExceeded(name string, rule config.RateLimitRule) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RecordRateLimitHit(name)
		logging.Ctx(r.Context()).Warn().Str("limiter", name).Str("path", r.URL.Path).Msg("Rate limit exceeded")

		window := humanWindow(rule.Window)
		respondFailure(w, http.StatusTooManyRequests, ErrTitleTooManyRequests, Details{
			"message": fmt.Sprintf("You have exceeded %d requests per %s. Try again later.", rule.Requests, window),
			"limit":   rule.Requests,
			"window":  window,
		})
	}
}

// humanWindow renders whole hours and minutes as words, e.g. "15 minutes".
func humanWindow(d time.Duration) string {
	plural := func(n int64, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}

	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int64(d/time.Minute), "minute")
	case d%time.Second == 0:
		return plural(int64(d/time.Second), "second")
	default:
		return d.String()
	}
}

// APISecurityHeaders returns a middleware that adds security headers to API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Cache-Control: no-store (position data is live and per-caller)
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added when the request is over HTTPS or behind a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
