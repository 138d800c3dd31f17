// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package records turns client record queries into upstream position calls.

Each operation builds a short plan of upstream queries:

	LastHour    since=3600
	LastHours   since=hours*3600, hours in [2, 24]
	AllDay      one full-day range, or two half-day ranges after 11:59:59
	SelectDay   two half-day ranges
	DateRange   one full-day range
	ByID        queryBy=beaconRef over the last calendar month (UTC)

The upstream refuses windows holding more than 150,000 rows, so busy days
are fetched as 00:00:00-11:59:59 and 12:00:00-23:59:59. Steps run one after
another and the first failure ends the plan. Results are concatenated in
plan order and converted with models.TransformRecords.
*/
package records
