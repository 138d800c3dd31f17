// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/beacongate/internal/auth"
	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/middleware"
	"github.com/tomtom215/beacongate/internal/records"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
	queryLog      *logging.QueryLogger
}

// NewRouter creates a Router. queryLog may be nil to disable the client query log.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMiddleware *ChiMiddleware, queryLog *logging.QueryLogger) *Router {
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: chiMiddleware,
		queryLog:      queryLog,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered everywhere
	r.Use(middleware.PrometheusMetrics)
	if router.queryLog != nil {
		r.Use(middleware.QueryLog(router.queryLog))
	}

	// Set before Route so subrouters inherit them.
	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Records Endpoints
	// ========================
	// Static routes win over /{id} in chi, so last-hour, all-day, select-day
	// and date-range never reach ByID.
	r.Route("/api/v1/records", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("global"))
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Use(router.auth.Authenticate)
		r.Use(router.chiMiddleware.Deadline())

		r.With(router.chiMiddleware.RateLimit(records.OpLastHour)).Get("/last-hour", router.handler.LastHour)
		r.With(router.chiMiddleware.RateLimit(records.OpLastHours)).Get("/last/{hours}", router.handler.LastHours)
		r.With(router.chiMiddleware.RateLimit(records.OpAllDay)).Get("/all-day", router.handler.AllDay)
		r.With(router.chiMiddleware.RateLimit(records.OpSelectDay)).Get("/select-day", router.handler.SelectDay)
		r.With(router.chiMiddleware.RateLimit(records.OpDateRange)).Get("/date-range", router.handler.DateRange)
		r.With(router.chiMiddleware.RateLimit(records.OpByID)).Get("/{id}", router.handler.ByID)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
