// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

// Package logging provides centralized zerolog-based structured logging for Beacongate.
//
// The package provides:
//   - A global zerolog logger configured once from LOG_LEVEL, LOG_FORMAT and LOG_CALLER
//   - Context-aware logging that carries the request ID and record operation
//   - An slog adapter so the suture supervisor logs through zerolog
//   - The client query log (QueryLogger), one line per served request
//   - Credential masking helpers for anything derived from request input
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("port", 6002).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Upstream call failed")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
