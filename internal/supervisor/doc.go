// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package supervisor runs Beacongate's long-lived services under suture v4.

The tree:

	RootSupervisor ("beacongate")
	├── UpstreamSupervisor ("upstream-layer")
	│   └── UpstreamProbeService (if UPSTREAM_PROBE_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog into the zerolog-backed
slog logger from internal/logging.

Usage in main:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    ...
	}

Service return values:

	nil        stopped cleanly, not restarted
	error      crashed, restarted
	ctx.Err()  shutdown requested
*/
package supervisor
