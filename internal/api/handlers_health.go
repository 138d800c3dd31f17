// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"net/http"
	"time"
)

const breakerUnknown = "unknown"

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status         string    `json:"status"` // healthy or degraded
	Version        string    `json:"version"`
	Environment    string    `json:"environment"`
	UptimeSeconds  float64   `json:"uptime_seconds"`
	CircuitBreaker string    `json:"circuit_breaker"`
	Timestamp      time.Time `json:"timestamp"`
}

// ReadyStatus is the body of GET /health/ready.
type ReadyStatus struct {
	Ready          bool   `json:"ready"`
	CircuitBreaker string `json:"circuit_breaker"`
}

// Health handles health check requests
//
// @Summary Gateway health
// @Description Reports version, environment, uptime and the upstream circuit breaker state. Degraded while the circuit is open.
// @Tags Health
// @Produce json
// @Success 200 {object} api.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	state := h.breakerState()

	status := "healthy"
	if h.breakerOpen() {
		status = "degraded"
	}

	env := ""
	if h.config != nil {
		env = h.config.EnvironmentName()
	}

	writeJSON(w, http.StatusOK, HealthStatus{
		Status:         status,
		Version:        h.version,
		Environment:    env,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
		CircuitBreaker: state,
		Timestamp:      time.Now().UTC(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 503 while the upstream circuit breaker is open.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} api.ReadyStatus
// @Failure 503 {object} api.ReadyStatus "Upstream circuit open"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	body := ReadyStatus{
		Ready:          !h.breakerOpen(),
		CircuitBreaker: h.breakerState(),
	}

	status := http.StatusOK
	if !body.Ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body)
}

func (h *Handler) breakerState() string {
	if h.upstream == nil {
		return breakerUnknown
	}
	return h.upstream.BreakerState()
}

func (h *Handler) breakerOpen() bool {
	return h.upstream != nil && h.upstream.BreakerOpen()
}
