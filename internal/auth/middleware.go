// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/logging"
)

// Mode selects how bearer tokens are checked.
type Mode string

const (
	ModeToken Mode = "token" // shared API_TOKEN, constant-time compare
	ModeJWT   Mode = "jwt"   // HS256 token signed with JWT_SECRET
	ModeNone  Mode = "none"
)

// Client-facing auth failure messages.
const (
	MsgTokenMissing = "Token not provided"
	MsgTokenInvalid = "Invalid token"
)

type contextKey string

const subjectContextKey contextKey = "auth-subject"

// Middleware enforces bearer-token authentication on the records routes.
type Middleware struct {
	mode  Mode
	token []byte
	jwt   *JWTManager
}

// NewMiddleware builds the middleware for the configured auth mode.
func NewMiddleware(cfg *config.SecurityConfig) (*Middleware, error) {
	m := &Middleware{mode: Mode(cfg.AuthMode)}

	switch m.mode {
	case ModeToken:
		if cfg.APIToken == "" {
			return nil, fmt.Errorf("auth mode %q requires API_TOKEN", m.mode)
		}
		m.token = []byte(cfg.APIToken)
	case ModeJWT:
		mgr, err := NewJWTManager(cfg.JWTSecret, DefaultTokenTTL)
		if err != nil {
			return nil, err
		}
		m.jwt = mgr
	case ModeNone:
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}

	return m, nil
}

// Mode returns the active auth mode.
func (m *Middleware) Mode() Mode {
	return m.mode
}

// Authenticate rejects requests without a valid bearer token.
// A missing token gives 401, a wrong one 403.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == ModeNone {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			logging.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("Request without bearer token")
			recordAttempt(m.mode, OutcomeMissing)
			writeAuthError(w, http.StatusUnauthorized, MsgTokenMissing)
			return
		}

		subject, ok := m.verify(r.Context(), token)
		if !ok {
			logging.Ctx(r.Context()).Warn().
				Str("path", r.URL.Path).
				Str("token", logging.SanitizeToken(token)).
				Msg("Bearer token rejected")
			recordAttempt(m.mode, OutcomeInvalid)
			writeAuthError(w, http.StatusForbidden, MsgTokenInvalid)
			return
		}
		recordAttempt(m.mode, OutcomeSuccess)

		ctx := context.WithValue(r.Context(), subjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) verify(ctx context.Context, token string) (string, bool) {
	switch m.mode {
	case ModeToken:
		if subtle.ConstantTimeCompare([]byte(token), m.token) == 1 {
			return "api-token", true
		}
		return "", false
	case ModeJWT:
		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			logging.Ctx(ctx).Debug().Err(err).Msg("JWT validation failed")
			return "", false
		}
		return claims.Subject, true
	default:
		return "", false
	}
}

// SubjectFromContext returns the authenticated caller, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectContextKey).(string)
	return s, ok
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{
		"success": false,
		"error":   msg,
		"data":    []struct{}{},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("Failed to encode auth error")
	}
}
