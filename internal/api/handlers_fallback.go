// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/beacongate/internal/logging"
)

// AvailableEndpoints is listed in every 404 to help callers find the right route.
var AvailableEndpoints = []string{
	"GET /api/v1/records/last-hour - Get records from the last hour",
	"GET /api/v1/records/last/{hours} - Get records from the last N hours (2-24)",
	"GET /api/v1/records/all-day - Get all transmissions from the current day",
	"GET /api/v1/records/select-day?date=DD-MM-YYYY - Get all records of a day, fetched in two halves",
	"GET /api/v1/records/date-range?date=DD-MM-YYYY - Get records from a specific day in one query",
	"GET /api/v1/records/{id} - Get records by beacon id over the last month",
}

// NotFound handles unmatched routes with a structured 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	logging.Ctx(r.Context()).Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg("Route not found")
	respondNotFound(w, r)
}

// MethodNotAllowed handles known routes requested with a method other than GET.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	respondFailure(w, http.StatusMethodNotAllowed, ErrTitleMethodNotAllowed, Details{
		"message": fmt.Sprintf("The endpoint %s %s only accepts GET", r.Method, r.URL.Path),
	})
}

func respondNotFound(w http.ResponseWriter, r *http.Request) {
	respondFailure(w, http.StatusNotFound, ErrTitleNotFound, Details{
		"message":            fmt.Sprintf("The endpoint %s %s does not exist", r.Method, r.URL.Path),
		"availableEndpoints": AvailableEndpoints,
	})
}
