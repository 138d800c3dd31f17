// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package services provides suture.Service wrappers for Beacongate components.

HTTPServerService turns the ListenAndServe/Shutdown pair of *http.Server into
suture's Serve(ctx) pattern with a bounded graceful shutdown.

UpstreamProbeService pings the positions service on an interval and exports
beacongate_upstream_probe_up. It is only added to the tree when
UPSTREAM_PROBE_INTERVAL is positive.

Both implement fmt.Stringer so suture can name them in log events.
*/
package services
