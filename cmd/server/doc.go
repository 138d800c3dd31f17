// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package main is the entry point for the Beacongate server.

Beacongate sits in front of a vessel positions service. It builds the
upstream time windows for each records endpoint, splits whole-day queries in
two, rewrites each record's transmission time into display form and serves
the result as JSON.

# Application Architecture

	RootSupervisor ("beacongate")
	├── UpstreamSupervisor ("upstream-layer")
	│   └── Upstream probe (optional, UPSTREAM_PROBE_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, plus the client query log
 3. Upstream client: resty with retries, pacing and a gobreaker circuit breaker
 4. Records service: window planning and record transformation
 5. Authentication: shared bearer token, JWT or none
 6. HTTP router: chi with CORS, httprate quotas and Prometheus metrics
 7. Supervisor tree: suture v4

# Configuration

Upstream and client credentials:
  - EXTERNAL_API_URL: base URL of the positions service
  - API_LOGIN, API_PASSWORD: credentials sent on every upstream query
  - API_TOKEN: bearer token clients must present (AUTH_MODE=token)

Common optional settings:
  - PORT (default 6002), HOST, NODE_ENV
  - AUTH_MODE: token, jwt or none; JWT_SECRET for jwt
  - CORS_ORIGINS: comma separated, default *
  - DAY_SPLIT_TIMEZONE: IANA zone for day boundaries, default Local
  - RATE_LIMIT_<NAME>_REQUESTS / _WINDOW for global, last_hour, last_hours,
    all_day, select_day, by_id and date_range
  - UPSTREAM_TIMEOUT, UPSTREAM_RETRIES, UPSTREAM_RATE_LIMIT
  - UPSTREAM_PROBE_INTERVAL: 0 disables the probe
  - SERVER_WRITE_TIMEOUT: unset derives it from the upstream timeout and
    retries, so a slow split day still ends in an error body
  - LOG_LEVEL, LOG_FORMAT, LOG_QUERY_FILE

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to 10 seconds.

# Example

	export EXTERNAL_API_URL=https://positions.example.org/api
	export API_LOGIN=gateway
	export API_PASSWORD=secret
	export API_TOKEN=$(openssl rand -hex 24)
	./beacongate
*/
package main
