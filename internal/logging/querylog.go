// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// QueryEntry is one client request as recorded in the query log.
type QueryEntry struct {
	Endpoint     string
	Method       string
	Query        map[string][]string
	RouteParams  map[string]string
	ResponseTime time.Duration
	StatusCode   int
	ClientIP     string
	RequestID    string
}

// QueryLogger writes one structured line per client request.
//
// With a file path it appends JSON lines to that file; otherwise it writes
// through the global logger tagged component=client_query.
type QueryLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
	closer io.Closer
}

// NewQueryLogger opens the query log sink. An empty path uses the main logger.
func NewQueryLogger(path string) (*QueryLogger, error) {
	if path == "" {
		return &QueryLogger{logger: WithComponent("client_query")}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open query log %s: %w", path, err)
	}
	return &QueryLogger{
		logger: zerolog.New(f).With().Timestamp().Str("component", "client_query").Logger(),
		closer: f,
	}, nil
}

// NewQueryLoggerWithWriter writes query entries to w. Used in tests.
func NewQueryLoggerWithWriter(w io.Writer) *QueryLogger {
	return &QueryLogger{logger: zerolog.New(w).With().Str("component", "client_query").Logger()}
}

// Log records one request. Credential-like query values are masked.
func (q *QueryLogger) Log(e *QueryEntry) {
	params := zerolog.Dict().
		Str("method", e.Method).
		Interface("query", SanitizeParams(e.Query))
	if len(e.RouteParams) > 0 {
		params = params.Interface("route", e.RouteParams)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	event := q.logger.Info()
	if e.StatusCode >= 500 {
		event = q.logger.Warn()
	}
	event.
		Str("endpoint", e.Endpoint).
		Dict("params", params).
		Int64("response_time_ms", e.ResponseTime.Milliseconds()).
		Int("status_code", e.StatusCode).
		Str("client_ip", e.ClientIP).
		Str("request_id", e.RequestID).
		Msg("Client query")
}

// Close releases the file sink, if any.
func (q *QueryLogger) Close() error {
	if q.closer == nil {
		return nil
	}
	return q.closer.Close()
}
