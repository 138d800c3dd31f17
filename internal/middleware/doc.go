// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package middleware provides HTTP middleware components for the gateway.

All middleware has the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: UUID request IDs, echoed in X-Request-ID and carried in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - QueryLog: one structured client query entry per request (endpoint,
    params, response time, status, client IP)
  - Deadline: bounds the request context so upstream work ends before the
    server write timeout

Typical stack, outermost first:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.QueryLog(queryLogger))
	r.Use(middleware.PrometheusMetrics)

Both PrometheusMetrics and QueryLog read the route after the handler
returns; chi fills the route context while routing.
*/
package middleware
