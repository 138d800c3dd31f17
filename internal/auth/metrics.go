// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Authentication outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeMissing = "missing"
	OutcomeInvalid = "invalid"
)

// AuthAttempts counts bearer-token checks.
// Labels:
//   - mode: token, jwt
//   - outcome: success, missing, invalid
var AuthAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "beacongate_auth_attempts_total",
		Help: "Total number of bearer token checks by outcome",
	},
	[]string{"mode", "outcome"},
)

func recordAttempt(mode Mode, outcome string) {
	AuthAttempts.WithLabelValues(string(mode), outcome).Inc()
}
