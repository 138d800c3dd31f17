// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"context"
	"time"

	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/models"
)

// RecordsService is the orchestrator behind the records routes.
// *records.Service implements it.
type RecordsService interface {
	LastHour(ctx context.Context) (*models.RecordsResponse, error)
	LastHours(ctx context.Context, hours int) (*models.RecordsResponse, error)
	AllDay(ctx context.Context) (*models.RecordsResponse, error)
	SelectDay(ctx context.Context, day time.Time) (*models.RecordsResponse, error)
	DateRange(ctx context.Context, day time.Time) (*models.RecordsResponse, error)
	ByID(ctx context.Context, id string) (*models.RecordsResponse, error)
}

// UpstreamStatus exposes the upstream circuit breaker to the health checks.
// *upstream.Client implements it.
type UpstreamStatus interface {
	BreakerState() string
	BreakerOpen() bool
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_records.go: the six records endpoints
//   - handlers_health.go: health, liveness and readiness
//   - handlers_fallback.go: structured 404 and 405
type Handler struct {
	records   RecordsService
	upstream  UpstreamStatus
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. upstream may be nil, in which case
// the health endpoints report the circuit as unknown.
func NewHandler(records RecordsService, upstream UpstreamStatus, cfg *config.Config, version string) *Handler {
	return &Handler{
		records:   records,
		upstream:  upstream,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
