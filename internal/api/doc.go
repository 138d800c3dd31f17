// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package api provides the HTTP boundary of Beacongate.

It validates query and path parameters, calls the records service and maps
its results onto HTTP status codes and JSON bodies.

Endpoints (all GET, all under /api/v1/records, all authenticated):

  - /last-hour        positions from the last 3600 seconds; rejects any query string
  - /last/{hours}     positions from the last 2 to 24 hours
  - /all-day          positions since midnight today
  - /select-day       one whole day, ?date=DD-MM-YYYY
  - /date-range       one whole day, fetched as a single query
  - /{id}             one beacon over the last month

Operational endpoints are /health, /health/live, /health/ready, /metrics and
/swagger/*.

Status mapping:

	200  success, body {"success": true, "data": [...]}
	400  invalid parameter
	401  missing bearer token
	403  invalid bearer token
	404  unknown route, or an id that looks like last-hour
	405  non-GET method
	413  upstream row limit reached
	429  per-IP rate limit exceeded
	500  upstream failure, unreachable upstream or malformed record

Every non-2xx body is a FailureResponse:

	{"success": false, "error": "<title>", "details": {...}, "data": []}

Middleware order on the records group: global rate limit, security headers,
gzip compression, authentication, then the per-route rate limit. RequestID,
RealIP, Recoverer, CORS, Prometheus metrics and the optional query log run
on every request.
*/
package api
