// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

// Package main provides the Beacongate HTTP server
//
// @title Beacongate API
// @version 1.0
// @description Read-only gateway over a vessel positions service.
// @description
// @description ## Authentication
// @description
// @description Every /api/v1/records endpoint requires `Authorization: Bearer <token>`.
// @description A missing token returns 401, a wrong one 403.
// @description
// @description ## Rate Limiting
// @description
// @description Quotas are per client IP: one global quota plus one per endpoint.
// @description Exceeding one returns 429.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": "Invalid date format",
// @description   "details": {"message": "Date must be in DD-MM-YYYY format"},
// @description   "data": []
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/beacongate/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:6002
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token, e.g. "Bearer abc123".
//
// @tag.name Records
// @tag.description Vessel position records over a time window or for one beacon
//
// @tag.name Health
// @tag.description Liveness, readiness and upstream circuit state
package main
