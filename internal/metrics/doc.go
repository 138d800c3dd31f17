// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package metrics defines the Prometheus instrumentation for Beacongate.

All collectors are registered with the default registry via promauto and
served at GET /metrics.

# Metric Families

API:
  - beacongate_api_requests_total{method,endpoint,status}
  - beacongate_api_request_duration_seconds{method,endpoint}
  - beacongate_api_active_requests
  - beacongate_rate_limit_hits_total{limiter}

Upstream positions API:
  - beacongate_upstream_requests_total{result}: ok, row_limit, upstream, network
  - beacongate_upstream_request_duration_seconds
  - beacongate_upstream_records_total
  - beacongate_upstream_probe_up

Query planning:
  - beacongate_split_fetches_total{operation}
  - beacongate_row_limit_hits_total{operation}

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

The endpoint label is the chi route pattern (for example
/api/v1/records/last/{hours}), never the raw path, so record IDs and hour
values do not create unbounded label cardinality.
*/
package metrics
