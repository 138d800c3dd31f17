// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/records"
	"github.com/tomtom215/beacongate/internal/upstream"
)

// Failure titles, the "error" field of a FailureResponse.
const (
	ErrTitleParamsNotAllowed = "Parameters not allowed"
	ErrTitleInvalidParameter = "Invalid parameter"
	ErrTitleRequiredParam    = "Required parameter"
	ErrTitleInvalidDateFmt   = "Invalid date format"
	ErrTitleInvalidDate      = "Invalid date"
	ErrTitleNotFound         = "Endpoint not found"
	ErrTitleMethodNotAllowed = "Method not allowed"
	ErrTitleQueryTooLarge    = "Query too large"
	ErrTitleProcessing       = "Error processing request"
	ErrTitleTooManyRequests  = "Too many requests"
	ErrTitleInternal         = "Internal server error"
)

const hoursParamMessage = "The hours parameter must be a number between 2 and 24 (use /last-hour for 1 hour)"

// rowLimitSuggestions tells the caller how to narrow a query that hit the
// upstream row ceiling.
var rowLimitSuggestions = map[string]string{
	records.OpLastHour:  "The last hour alone exceeds the upstream limit; retry later or contact the upstream provider",
	records.OpLastHours: "Request fewer hours with /api/v1/records/last/{hours}",
	records.OpAllDay:    "Request a shorter window with /api/v1/records/last/{hours}",
	records.OpSelectDay: "Request a shorter window with /api/v1/records/last/{hours}",
	records.OpDateRange: "Use /api/v1/records/select-day, which fetches the day in two halves",
	records.OpByID:      "This beacon reported more positions than the upstream returns for one month",
}

// respondFetchError maps an orchestrator error to an HTTP response:
// row limit 413, bad input 400, anything else 500.
func respondFetchError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, records.ErrInvalidHours):
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidParameter, Details{"message": hoursParamMessage})
		return
	case errors.Is(err, records.ErrEmptyID):
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidParameter, Details{"message": "The id parameter is required"})
		return
	}

	fe, ok := upstream.AsFetchError(err)
	if !ok {
		log.Error().Err(err).Str("operation", op).Msg("Records request failed")
		respondFailure(w, http.StatusInternalServerError, ErrTitleProcessing, Details{
			"message": "The records could not be processed",
		})
		return
	}

	switch fe.Kind {
	case upstream.KindRowLimit:
		log.Warn().Int("max_rows", fe.MaxRows).Str("operation", op).Msg("Upstream row limit reached")
		respondFailure(w, http.StatusRequestEntityTooLarge, ErrTitleQueryTooLarge, Details{
			"message":    fe.Error(),
			"maxRows":    fe.MaxRows,
			"suggestion": rowLimitSuggestions[op],
		})
	case upstream.KindNetwork:
		log.Error().Err(fe).Str("operation", op).Msg("Upstream unreachable")
		respondFailure(w, http.StatusInternalServerError, ErrTitleProcessing, Details{
			"message": "The positions service could not be reached",
		})
	default:
		log.Error().Err(fe).Int("upstream_status", fe.StatusCode).Str("operation", op).Msg("Upstream request failed")
		respondFailure(w, http.StatusInternalServerError, ErrTitleProcessing, Details{
			"message": fe.Message,
		})
	}
}
