// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package services

import (
	"context"
	"time"

	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/metrics"
	"github.com/tomtom215/beacongate/internal/upstream"
)

// Pinger checks that the positions service answers.
// Satisfied by *upstream.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamProbeService pings the positions service on a fixed interval and
// publishes the result as the beacongate_upstream_probe_up gauge.
//
// Probes go through the client's circuit breaker, so a successful probe
// also moves a half-open breaker back to closed.
type UpstreamProbeService struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	lastUp *bool
}

// NewUpstreamProbeService creates a probe. Each ping is bounded by the
// smaller of interval and 30s.
func NewUpstreamProbeService(pinger Pinger, interval time.Duration) *UpstreamProbeService {
	timeout := 30 * time.Second
	if interval < timeout {
		timeout = interval
	}
	return &UpstreamProbeService{
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
	}
}

// Serve implements suture.Service. It probes once immediately, then on
// every tick until ctx is canceled.
func (s *UpstreamProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

// probe runs one ping. A row-limit answer still proves the service is up.
func (s *UpstreamProbeService) probe(ctx context.Context) bool {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.pinger.Ping(pctx)
	up := err == nil || upstream.IsRowLimit(err)
	metrics.SetUpstreamProbeUp(up)

	if s.lastUp == nil || *s.lastUp != up {
		log := logging.WithComponent("upstream-probe")
		if up {
			log.Info().Msg("Positions service reachable")
		} else {
			log.Warn().Err(err).Msg("Positions service unreachable")
		}
	}
	s.lastUp = &up
	return up
}

// String implements fmt.Stringer for suture's log messages.
func (s *UpstreamProbeService) String() string {
	return "upstream-probe"
}
