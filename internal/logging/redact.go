// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package logging

import "strings"

// sensitiveKeys are parameter and header names whose values are never logged in full.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"api_token":     true,
	"password":      true,
	"secret":        true,
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
	"bearer":        true,
	"login":         true,
}

// SanitizeToken masks a token, showing only the first and last 4 characters.
// Short values are fully masked.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// IsSensitiveKey reports whether values under key must be masked.
func IsSensitiveKey(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}

// SanitizeValue masks value when key names a credential.
func SanitizeValue(key, value string) string {
	if IsSensitiveKey(key) {
		return SanitizeToken(value)
	}
	return truncateString(value, 256)
}

// SanitizeParams returns a copy of params with credential values masked
// and multi-valued keys joined by commas.
func SanitizeParams(params map[string][]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, vs := range params {
		out[k] = SanitizeValue(k, strings.Join(vs, ","))
	}
	return out
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
