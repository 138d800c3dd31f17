// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/records"
	"github.com/tomtom215/beacongate/internal/validation"
)

// LastHour returns positions reported in the last hour.
//
// @Summary Positions from the last hour
// @Description Returns every position reported in the last 3600 seconds. The route accepts no query parameters.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} api.FailureResponse "Query parameters supplied"
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/last-hour [get]
func (h *Handler) LastHour(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query(); len(q) > 0 {
		logging.Ctx(r.Context()).Warn().Str("query", r.URL.RawQuery).Msg("Parameters not allowed on last-hour")
		respondFailure(w, http.StatusBadRequest, ErrTitleParamsNotAllowed, Details{
			"message": "The route /api/v1/records/last-hour does not accept additional parameters",
		})
		return
	}

	resp, err := h.records.LastHour(r.Context())
	if err != nil {
		respondFetchError(w, r, records.OpLastHour, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// LastHours returns positions reported in the last N hours.
//
// @Summary Positions from the last N hours
// @Description Returns every position reported in the last N hours, N between 2 and 24.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param hours path int true "Hours to look back (2-24)"
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} api.FailureResponse "Hours outside 2-24 or not a number"
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/last/{hours} [get]
func (h *Handler) LastHours(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "hours")

	hours, err := strconv.Atoi(raw)
	if err == nil {
		if verr := validation.ValidateStruct(&validation.HoursRequest{Hours: hours}); verr != nil {
			err = verr
		}
	}
	if err != nil {
		logging.Ctx(r.Context()).Warn().Str("hours", raw).Msg("Invalid hours parameter")
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidParameter, Details{
			"message":  hoursParamMessage,
			"received": raw,
		})
		return
	}

	resp, err := h.records.LastHours(r.Context(), hours)
	if err != nil {
		respondFetchError(w, r, records.OpLastHours, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AllDay returns today's positions so far.
//
// @Summary Positions from the current day
// @Description Returns every position reported since midnight. After 11:59:59 the day is fetched in two halves.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RecordsResponse
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/all-day [get]
func (h *Handler) AllDay(w http.ResponseWriter, r *http.Request) {
	resp, err := h.records.AllDay(r.Context())
	if err != nil {
		respondFetchError(w, r, records.OpAllDay, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SelectDay returns the positions of one day, fetched in two halves.
//
// @Summary Positions from a selected day
// @Description Returns every position reported on the given day. The day is always fetched as 00:00:00-11:59:59 and 12:00:00-23:59:59.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day in DD-MM-YYYY format"
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} api.FailureResponse "Missing, malformed or impossible date"
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/select-day [get]
func (h *Handler) SelectDay(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}

	resp, err := h.records.SelectDay(r.Context(), day)
	if err != nil {
		respondFetchError(w, r, records.OpSelectDay, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DateRange returns the positions of one day in a single upstream call.
//
// @Summary Positions from a day in one query
// @Description Returns every position reported on the given day using a single full-day query. Busy days may exceed the upstream limit; use select-day for those.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day in DD-MM-YYYY format"
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} api.FailureResponse "Missing, malformed or impossible date"
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/date-range [get]
func (h *Handler) DateRange(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDayParam(w, r)
	if !ok {
		return
	}

	resp, err := h.records.DateRange(r.Context(), day)
	if err != nil {
		respondFetchError(w, r, records.OpDateRange, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ByID returns one beacon's positions over the last month.
//
// @Summary Positions of one beacon
// @Description Returns the positions reported by a beacon over the last calendar month (UTC).
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Active beacon reference"
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} api.FailureResponse "Invalid id"
// @Failure 404 {object} api.FailureResponse "Id collides with the last-hour route"
// @Failure 413 {object} api.FailureResponse "Upstream row limit reached"
// @Failure 500 {object} api.FailureResponse "Upstream failure"
// @Router /api/v1/records/{id} [get]
func (h *Handler) ByID(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when present, leaving the segment escaped.
	rawID := chi.URLParam(r, "id")
	id, err := url.PathUnescape(rawID)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidParameter, Details{
			"message":  "The id parameter is not a valid path segment",
			"received": rawID,
		})
		return
	}

	if verr := validation.ValidateStruct(&validation.BeaconRequest{ID: id}); verr != nil {
		if verr.First().Tag() == validation.TagNotLastHour {
			logging.Ctx(r.Context()).Warn().Str("id", id).Msg("Id resembles the last-hour route")
			respondNotFound(w, r)
			return
		}
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidParameter, Details{
			"message":  verr.Error(),
			"received": id,
		})
		return
	}

	resp, err := h.records.ByID(r.Context(), id)
	if err != nil {
		respondFetchError(w, r, records.OpByID, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseDayParam validates ?date= and writes the 400 itself on failure.
func parseDayParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date := r.URL.Query().Get("date")
	received := Details{"date": date}

	verr := validation.ValidateStruct(&validation.DayRequest{Date: date})
	if verr != nil {
		logging.Ctx(r.Context()).Warn().Str("date", date).Str("tag", verr.First().Tag()).Msg("Invalid date parameter")

		switch verr.First().Tag() {
		case "required":
			respondFailure(w, http.StatusBadRequest, ErrTitleRequiredParam, Details{
				"message":  "Date parameter is required (format: DD-MM-YYYY)",
				"received": received,
			})
		case validation.TagDayFormat:
			respondFailure(w, http.StatusBadRequest, ErrTitleInvalidDateFmt, Details{
				"message":  "Date must be in DD-MM-YYYY format",
				"received": received,
			})
		default:
			respondFailure(w, http.StatusBadRequest, ErrTitleInvalidDate, Details{
				"message":  "The provided date is not valid",
				"received": received,
			})
		}
		return time.Time{}, false
	}

	day, err := records.ParseDay(date)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, ErrTitleInvalidDate, Details{
			"message":  "The provided date is not valid",
			"received": received,
		})
		return time.Time{}, false
	}
	return day, true
}
