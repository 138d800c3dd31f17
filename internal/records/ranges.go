// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package records

import (
	"fmt"
	"time"

	"github.com/tomtom215/beacongate/internal/models"
)

// DayLayout is the client-facing day format, DD-MM-YYYY.
const DayLayout = "02-01-2006"

// Hours bounds accepted by LastHours.
const (
	MinHours = 2
	MaxHours = 24
)

// SinceSeconds converts a trailing window in hours to the upstream "since" value.
func SinceSeconds(hours int) int {
	return hours * 3600
}

// FormatUpstream renders t in the upstream range layout. No zone conversion
// is applied; the wall clock of t is sent as is.
func FormatUpstream(t time.Time) string {
	return t.Format(models.UpstreamTimeLayout)
}

// clockAt returns day's calendar date at the given wall time, in day's location.
func clockAt(day time.Time, hour, minute, second int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, second, 0, day.Location())
}

// FullDay covers day from 00:00:00 to 23:59:59.
func FullDay(day time.Time) models.DateRange {
	return models.DateRange{
		From: FormatUpstream(clockAt(day, 0, 0, 0)),
		To:   FormatUpstream(clockAt(day, 23, 59, 59)),
	}
}

// SplitDay covers day in two halves: 00:00:00-11:59:59 and 12:00:00-23:59:59.
// Together they cover exactly what FullDay covers.
func SplitDay(day time.Time) (morning, afternoon models.DateRange) {
	morning = models.DateRange{
		From: FormatUpstream(clockAt(day, 0, 0, 0)),
		To:   FormatUpstream(clockAt(day, 11, 59, 59)),
	}
	afternoon = models.DateRange{
		From: FormatUpstream(clockAt(day, 12, 0, 0)),
		To:   FormatUpstream(clockAt(day, 23, 59, 59)),
	}
	return morning, afternoon
}

// DefaultLookback is the by-id window: from one calendar month before now
// to now, both in UTC. Month arithmetic follows time.AddDate, so 31 March
// looks back to 2 or 3 March.
func DefaultLookback(now time.Time) models.DateRange {
	to := now.UTC()
	return models.DateRange{
		From: FormatUpstream(to.AddDate(0, -1, 0)),
		To:   FormatUpstream(to),
	}
}

// isAfterSplitThreshold reports whether t is strictly after 11:59:59.000 on
// its own wall clock.
func isAfterSplitThreshold(t time.Time) bool {
	h, m, s := t.Clock()
	if h > 11 {
		return true
	}
	return h == 11 && m == 59 && s == 59 && t.Nanosecond() > 0
}

// ParseDay parses a DD-MM-YYYY day. Impossible dates such as 31-02-2024 fail.
func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return day, nil
}
