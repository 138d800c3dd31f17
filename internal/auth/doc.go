// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

// Package auth guards the records API with bearer tokens.
//
// Three modes are supported (AUTH_MODE):
//
//	token  the Authorization header must carry API_TOKEN (default)
//	jwt    the header must carry an HS256 JWT signed with JWT_SECRET
//	none   no check; rejected by config validation in production
//
// A request without a token gets 401 "Token not provided"; a token that does
// not verify gets 403 "Invalid token". Both bodies use the records failure
// envelope so clients can parse every error the same way.
package auth
