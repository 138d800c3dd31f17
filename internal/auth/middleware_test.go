// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/beacongate/internal/config"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := SubjectFromContext(r.Context())
		w.Header().Set("X-Subject", subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.SecurityConfig
		wantErr bool
	}{
		{"token", config.SecurityConfig{AuthMode: "token", APIToken: "s3cret"}, false},
		{"token missing", config.SecurityConfig{AuthMode: "token"}, true},
		{"jwt", config.SecurityConfig{AuthMode: "jwt", JWTSecret: testSecret}, false},
		{"jwt missing secret", config.SecurityConfig{AuthMode: "jwt"}, true},
		{"none", config.SecurityConfig{AuthMode: "none"}, false},
		{"unknown", config.SecurityConfig{AuthMode: "basic"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewMiddleware(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMiddleware() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthenticate_TokenMode(t *testing.T) {
	t.Parallel()

	m, err := NewMiddleware(&config.SecurityConfig{AuthMode: "token", APIToken: "s3cret"})
	if err != nil {
		t.Fatalf("NewMiddleware() error = %v", err)
	}
	h := m.Authenticate(okHandler())

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid", "Bearer s3cret", http.StatusOK, ""},
		{"lowercase scheme", "bearer s3cret", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, MsgTokenMissing},
		{"wrong scheme", "Basic s3cret", http.StatusUnauthorized, MsgTokenMissing},
		{"empty token", "Bearer ", http.StatusUnauthorized, MsgTokenMissing},
		{"wrong token", "Bearer nope", http.StatusForbidden, MsgTokenInvalid},
		{"prefix of token", "Bearer s3cre", http.StatusForbidden, MsgTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/records/all-day", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantError == "" {
				if got := rec.Header().Get("X-Subject"); got != "api-token" {
					t.Errorf("subject = %q, want api-token", got)
				}
				return
			}

			var body struct {
				Success bool          `json:"success"`
				Error   string        `json:"error"`
				Data    []interface{} `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success || body.Error != tt.wantError || body.Data == nil {
				t.Errorf("body = %+v, want success=false error=%q data=[]", body, tt.wantError)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
		})
	}
}

func TestAuthenticate_JWTMode(t *testing.T) {
	t.Parallel()

	m, err := NewMiddleware(&config.SecurityConfig{AuthMode: "jwt", JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("NewMiddleware() error = %v", err)
	}
	h := m.Authenticate(okHandler())

	mgr, err := NewJWTManager(testSecret, 0)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	token, err := mgr.GenerateToken("fleet-dashboard")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := NewJWTManager("another_secret_that_is_also_long_enough_123", 0)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreign, err := other.GenerateToken("intruder")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Header().Get("X-Subject"); got != "fleet-dashboard" {
			t.Errorf("subject = %q, want fleet-dashboard", got)
		}
	})

	t.Run("foreign signature", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+foreign)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestAuthenticate_NoneMode(t *testing.T) {
	t.Parallel()

	m, err := NewMiddleware(&config.SecurityConfig{AuthMode: "none"})
	if err != nil {
		t.Fatalf("NewMiddleware() error = %v", err)
	}

	rec := httptest.NewRecorder()
	m.Authenticate(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if m.Mode() != ModeNone {
		t.Errorf("Mode() = %q, want none", m.Mode())
	}
}
