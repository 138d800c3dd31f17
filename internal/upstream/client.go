// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/metrics"
	"github.com/tomtom215/beacongate/internal/models"
)

const (
	// PositionsPath is the positions resource, relative to the configured base URL.
	PositionsPath = "/resources/positions"

	// ApplicationHeader identifies this gateway to the upstream.
	ApplicationHeader = "umv"

	// PositionFields is the fixed projection requested on every call.
	PositionFields = "activeBeaconRef,locDate,loc,speed,heading,mobileName,mobileTypeName"
)

// Query selects positions by exactly one of: a trailing window (Since, in
// seconds), an explicit range, or a beacon reference plus range.
type Query struct {
	Since     int
	Range     *models.DateRange
	BeaconRef string
}

// values renders the query string. The fixed parameters are always present.
func (q *Query) values() url.Values {
	v := url.Values{}
	v.Set("dateType", "location")
	v.Set("fields", PositionFields)
	v.Set("orderBy", "locDate")

	if q.Since > 0 {
		v.Set("since", strconv.Itoa(q.Since))
	}
	if q.Range != nil {
		v.Set("from", q.Range.From)
		v.Set("to", q.Range.To)
	}
	if q.BeaconRef != "" {
		v.Set("queryBy", "beaconRef")
		v.Set("query", q.BeaconRef)
	}
	return v
}

// positionsEnvelope covers both the success body and the error body.
type positionsEnvelope struct {
	models.ExternalRecordsResponse
	Message string       `json:"message"`
	Errors  []errorEntry `json:"errors"`
}

// Client calls the upstream positions API.
//
// Every call is paced by a token bucket, guarded by the circuit breaker and
// retried by resty on transport errors and 5xx. Failures come back as
// *FetchError and nothing else.
type Client struct {
	http    *resty.Client
	breaker *Breaker
	limiter *rate.Limiter
}

// NewClient creates a positions API client from the upstream settings.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return NewClientWithBreaker(cfg, NewBreaker(BreakerName, DefaultBreakerSettings()))
}

// NewClientWithBreaker creates a client around an existing breaker.
func NewClientWithBreaker(cfg *config.UpstreamConfig, breaker *Breaker) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(shouldRetry).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetLogger(newRestyLogger()).
		SetHeader("Accept", "application/json").
		SetHeader("login", cfg.Login).
		SetHeader("password", cfg.Password).
		SetHeader("application", ApplicationHeader)

	return &Client{
		http:    httpClient,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// shouldRetry retries transport errors and 5xx answers, unless the caller
// has already gone away. A row-limit answer is final whatever its status.
func shouldRetry(r *resty.Response, err error) bool {
	if r != nil && r.Request != nil && r.Request.Context().Err() != nil {
		return false
	}
	if err != nil {
		return true
	}
	if r == nil || r.StatusCode() < http.StatusInternalServerError {
		return false
	}
	return !isRowLimitBody(r.Body())
}

// FetchPositions performs one upstream call and returns the raw records in
// upstream order.
func (c *Client) FetchPositions(ctx context.Context, q Query) ([]models.ExternalRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, Network("outbound rate limiter", err)
	}

	start := time.Now()
	records, err := c.breaker.Execute(func() ([]models.ExternalRecord, error) {
		return c.doFetch(ctx, q)
	})
	elapsed := time.Since(start)

	result := "ok"
	if fe, ok := AsFetchError(err); ok {
		result = fe.Kind.String()
	}
	metrics.RecordUpstreamRequest(result, elapsed, len(records))

	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("result", result).Dur("elapsed", elapsed).Msg("Positions request failed")
		return nil, err
	}
	logging.Ctx(ctx).Debug().Int("records", len(records)).Dur("elapsed", elapsed).Msg("Positions request completed")
	return records, nil
}

func (c *Client) doFetch(ctx context.Context, q Query) ([]models.ExternalRecord, error) {
	params := q.values()
	logging.Ctx(ctx).Debug().Str("uri", PositionsPath+"?"+params.Encode()).Msg("Requesting positions")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(PositionsPath)
	if err != nil {
		return nil, Network(fmt.Sprintf("GET %s: %v", PositionsPath, err), err)
	}

	return decodePositions(resp.StatusCode(), resp.Body())
}

// decodePositions classifies an upstream answer. The row-limit signal wins
// over the HTTP status, since the upstream reports it with varying codes.
func decodePositions(statusCode int, body []byte) ([]models.ExternalRecord, error) {
	var env positionsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		if statusCode < 200 || statusCode > 299 {
			return nil, Upstream(fallbackMessage(statusCode, nil), statusCode)
		}
		return nil, Upstream("invalid upstream response: "+err.Error(), statusCode)
	}

	if rowLimit, ok := findRowLimit(env.Errors); ok {
		return nil, rowLimit
	}

	if statusCode < 200 || statusCode > 299 {
		return nil, Upstream(fallbackMessage(statusCode, &env), statusCode)
	}

	if env.Data == nil {
		return nil, Upstream("invalid upstream response: missing data", statusCode)
	}
	return *env.Data, nil
}

// Ping issues a minimal trailing-window query to check reachability.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.FetchPositions(ctx, Query{Since: 60})
	return err
}

// BreakerState returns the circuit breaker state name.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// BreakerOpen reports whether upstream calls are currently being rejected.
func (c *Client) BreakerOpen() bool {
	return c.breaker.Open()
}

// restyLogger routes resty's retry and error messages into zerolog.
type restyLogger struct{}

func newRestyLogger() resty.Logger { return restyLogger{} }

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error().Str("component", "upstream").Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn().Str("component", "upstream").Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug().Str("component", "upstream").Msgf(format, v...)
}
