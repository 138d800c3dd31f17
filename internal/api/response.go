// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/beacongate/internal/logging"
)

// FailureResponse is the body of every non-2xx records API response.
// Data is always an empty array so clients can read it unconditionally.
type FailureResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
	Data    []struct{}  `json:"data"`
}

// Details is the common shape of FailureResponse.Details. Handlers add
// fields such as received, maxRows or availableEndpoints as needed.
type Details map[string]interface{}

// respondFailure writes a failure envelope with the given status.
func respondFailure(w http.ResponseWriter, status int, title string, details Details) {
	body := FailureResponse{
		Success: false,
		Error:   title,
		Data:    []struct{}{},
	}
	if details != nil {
		body.Details = details
	}
	writeJSON(w, status, body)
}

// writeJSON writes JSON response with proper headers.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
