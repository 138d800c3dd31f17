// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator carries three custom tags:
//
//	ddmmyyyy     string matches ^\d{2}-\d{2}-\d{4}$
//	calendarday  DD-MM-YYYY string names a real day (31-02-2024 fails)
//	notlasthour  string does not contain "last-hour", case-insensitively
//
// Request structs for the record endpoints live in requests.go. Handlers
// validate them and map the first failing tag to an HTTP response:
//
//	req := validation.DayRequest{Date: r.URL.Query().Get("date")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    switch verr.First().Tag() {
//	    case "required":
//	        // missing parameter
//	    case validation.TagDayFormat:
//	        // bad format
//	    }
//	}
package validation
