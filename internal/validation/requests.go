// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package validation

// HoursRequest is the /last/{hours} path parameter after integer parsing.
type HoursRequest struct {
	Hours int `validate:"min=2,max=24"`
}

// DayRequest is the ?date= query parameter of select-day and date-range.
// Tags are checked in order, so a missing date never reports a format error.
type DayRequest struct {
	Date string `validate:"required,ddmmyyyy,calendarday"`
}

// BeaconRequest is the /{id} path parameter.
type BeaconRequest struct {
	ID string `validate:"required,max=128,notlasthour"`
}
