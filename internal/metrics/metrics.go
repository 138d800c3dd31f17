// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacongate_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "beacongate_api_request_duration_seconds",
			Help: "Duration of API requests in seconds",
			// Split day queries can take two full upstream round trips
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacongate_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacongate_rate_limit_hits_total",
			Help: "Total number of requests rejected by an inbound rate limiter",
		},
		[]string{"limiter"},
	)

	// Upstream Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacongate_upstream_requests_total",
			Help: "Total number of positions API calls by outcome",
		},
		[]string{"result"}, // "ok", "row_limit", "upstream", "network"
	)

	UpstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beacongate_upstream_request_duration_seconds",
			Help:    "Duration of positions API calls in seconds, retries included",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	UpstreamRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacongate_upstream_records_total",
			Help: "Total number of position records received from the upstream",
		},
	)

	UpstreamProbeUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacongate_upstream_probe_up",
			Help: "Whether the last background probe reached the upstream (1) or not (0)",
		},
	)

	// Query Planning Metrics
	SplitFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacongate_split_fetches_total",
			Help: "Total number of day queries served as two half-day upstream calls",
		},
		[]string{"operation"},
	)

	RowLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacongate_row_limit_hits_total",
			Help: "Total number of queries refused by the upstream row ceiling",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a 429 from the named limiter.
func RecordRateLimitHit(limiter string) {
	RateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordUpstreamRequest records one positions API call. result is "ok" or a
// failure kind; records is the number of rows returned on success.
func RecordUpstreamRequest(result string, duration time.Duration, records int) {
	UpstreamRequests.WithLabelValues(result).Inc()
	UpstreamRequestDuration.Observe(duration.Seconds())
	if records > 0 {
		UpstreamRecords.Add(float64(records))
	}
}

// RecordSplitFetch counts a day query served as two half-day calls.
func RecordSplitFetch(operation string) {
	SplitFetches.WithLabelValues(operation).Inc()
}

// RecordRowLimitHit counts a row-ceiling refusal for an operation.
func RecordRowLimitHit(operation string) {
	RowLimitHits.WithLabelValues(operation).Inc()
}

// SetUpstreamProbeUp records the outcome of the last background probe.
func SetUpstreamProbeUp(up bool) {
	if up {
		UpstreamProbeUp.Set(1)
		return
	}
	UpstreamProbeUp.Set(0)
}
