// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/beacongate/internal/auth"
	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/models"
)

const testToken = "test-api-token-0123456789"

// fakeRecords records calls and answers every operation with resp or err.
type fakeRecords struct {
	mu    sync.Mutex
	calls []string
	hours int
	day   time.Time
	id    string

	resp *models.RecordsResponse
	err  error
}

func (f *fakeRecords) record(op string) (*models.RecordsResponse, error) {
	f.calls = append(f.calls, op)
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return models.NewRecordsResponse(nil), nil
}

func (f *fakeRecords) LastHour(context.Context) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("last_hour")
}

func (f *fakeRecords) LastHours(_ context.Context, hours int) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hours = hours
	return f.record("last_hours")
}

func (f *fakeRecords) AllDay(context.Context) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("all_day")
}

func (f *fakeRecords) SelectDay(_ context.Context, day time.Time) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.day = day
	return f.record("select_day")
}

func (f *fakeRecords) DateRange(_ context.Context, day time.Time) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.day = day
	return f.record("date_range")
}

func (f *fakeRecords) ByID(_ context.Context, id string) (*models.RecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.id = id
	return f.record("by_id")
}

func (f *fakeRecords) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeUpstream struct {
	state string
	open  bool
}

func (f fakeUpstream) BreakerState() string { return f.state }
func (f fakeUpstream) BreakerOpen() bool    { return f.open }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Security: config.SecurityConfig{
			AuthMode:          "token",
			APIToken:          testToken,
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

// newTestServer wires the full router around svc. mutate may adjust config
// before construction.
func newTestServer(t *testing.T, svc RecordsService, up UpstreamStatus, mutate func(*config.Config)) http.Handler {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	authMW, err := auth.NewMiddleware(&cfg.Security)
	if err != nil {
		t.Fatalf("auth.NewMiddleware() error = %v", err)
	}

	h := NewHandler(svc, up, cfg, "test")
	router := NewRouter(h, authMW, NewChiMiddleware(NewChiMiddlewareConfig(cfg)), nil)
	return router.SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// failureBody decodes a FailureResponse with details as a generic map.
type failureBody struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details"`
	Data    []interface{}          `json:"data"`
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) failureBody {
	t.Helper()

	var body failureBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failure body %q: %v", rec.Body.String(), err)
	}
	if body.Success {
		t.Errorf("success = true in failure body")
	}
	if body.Data == nil || len(body.Data) != 0 {
		t.Errorf("data = %v, want []", body.Data)
	}
	return body
}
