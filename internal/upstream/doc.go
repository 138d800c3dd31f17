// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package upstream is the client for the vessel positions API
(GET {base}/resources/positions).

Each call sends the login, password and application headers plus the fixed
query parameters (dateType=location, the field projection, orderBy=locDate)
and one selector: since, from/to, or queryBy=beaconRef with from/to.

# Resilience

Calls pass through three layers, outermost first:

  - a token bucket (golang.org/x/time/rate) pacing outbound requests
  - a circuit breaker (sony/gobreaker) that opens on sustained 5xx and
    transport failures; row-limit and 4xx answers do not count against it
  - resty retries with capped exponential backoff on transport errors and 5xx

# Errors

Every failure is a *FetchError. Kind tells callers what happened:

	KindRowLimit  the window holds more rows than the upstream will return (MaxRows)
	KindUpstream  the upstream answered with a failure status or an unusable body
	KindNetwork   no usable answer: transport error, timeout or open circuit

Classification happens once, here. Callers match with AsFetchError or
IsRowLimit and never re-wrap into a generic error.
*/
package upstream
