// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultMaxRows is reported when the upstream signals a row-limit violation
// without a parseable ceiling.
const DefaultMaxRows = 150000

// Kind tags a FetchError.
type Kind int

const (
	// KindUpstream: the upstream answered, but with a failure status or an unusable body.
	KindUpstream Kind = iota
	// KindRowLimit: the upstream refused the window because it exceeds its row ceiling.
	KindRowLimit
	// KindNetwork: no usable answer (transport error, timeout, open circuit).
	KindNetwork
)

// String returns the kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindRowLimit:
		return "row_limit"
	case KindNetwork:
		return "network"
	default:
		return "upstream"
	}
}

// FetchError is the only error type produced by a positions fetch.
// Callers switch on Kind; only the fields relevant to that kind are set.
type FetchError struct {
	Kind       Kind
	MaxRows    int    // KindRowLimit
	Message    string // KindUpstream, KindNetwork
	StatusCode int    // KindUpstream, 0 if unknown
	Err        error  // underlying cause, if any
}

// RowLimit builds a row-limit signal.
func RowLimit(maxRows int) *FetchError {
	return &FetchError{Kind: KindRowLimit, MaxRows: maxRows}
}

// Upstream builds a generic upstream failure.
func Upstream(message string, statusCode int) *FetchError {
	return &FetchError{Kind: KindUpstream, Message: message, StatusCode: statusCode}
}

// Network builds a transport-level failure.
func Network(message string, cause error) *FetchError {
	return &FetchError{Kind: KindNetwork, Message: message, Err: cause}
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindRowLimit:
		return fmt.Sprintf("query exceeds the upstream maximum of %d rows", e.MaxRows)
	case KindNetwork:
		return "upstream unreachable: " + e.Message
	default:
		if e.StatusCode != 0 {
			return fmt.Sprintf("upstream request failed (status %d): %s", e.StatusCode, e.Message)
		}
		return "upstream request failed: " + e.Message
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError extracts a *FetchError from an error chain.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsRowLimit reports whether err carries a row-limit signal.
func IsRowLimit(err error) bool {
	fe, ok := AsFetchError(err)
	return ok && fe.Kind == KindRowLimit
}

// errorEntry is one element of the upstream "errors" array.
type errorEntry struct {
	Key       string            `json:"key"`
	Message   string            `json:"message"`
	Args      []json.RawMessage `json:"args"`
	Arguments []json.RawMessage `json:"arguments"`
}

func (e *errorEntry) firstArg() json.RawMessage {
	if len(e.Args) > 0 {
		return e.Args[0]
	}
	if len(e.Arguments) > 0 {
		return e.Arguments[0]
	}
	return nil
}

// isRowLimitKey matches MAX_ROWS_REACHED, maxRowsReached, max.rows.exceeded and similar.
func isRowLimitKey(key string) bool {
	k := strings.ToLower(key)
	k = strings.NewReplacer("_", "", "-", "", ".", "", " ", "").Replace(k)
	return strings.Contains(k, "maxrows")
}

// parseMaxRows reads the ceiling from a row-limit argument, which the
// upstream sends either as a JSON number or a numeric string.
func parseMaxRows(raw json.RawMessage) int {
	if len(raw) == 0 {
		return DefaultMaxRows
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.NewReplacer(",", "", " ", "", "_", "").Replace(strings.TrimSpace(s))
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
		return DefaultMaxRows
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && f > 0 {
		return int(f)
	}
	return DefaultMaxRows
}

// findRowLimit scans the errors array for a row-limit entry.
func findRowLimit(entries []errorEntry) (*FetchError, bool) {
	for i := range entries {
		if isRowLimitKey(entries[i].Key) {
			return RowLimit(parseMaxRows(entries[i].firstArg())), true
		}
	}
	return nil, false
}

// isRowLimitBody reports whether an upstream body carries the row-limit signal.
func isRowLimitBody(body []byte) bool {
	var env struct {
		Errors []errorEntry `json:"errors"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return false
	}
	_, ok := findRowLimit(env.Errors)
	return ok
}

// fallbackMessage picks the most useful message for a non-2xx answer.
func fallbackMessage(statusCode int, env *positionsEnvelope) string {
	if env != nil {
		if env.Message != "" {
			return env.Message
		}
		for i := range env.Errors {
			if env.Errors[i].Message != "" {
				return env.Errors[i].Message
			}
			if env.Errors[i].Key != "" {
				return env.Errors[i].Key
			}
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", statusCode)
}
