// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is built once at startup and passed by pointer into constructors.
// It is never mutated afterwards and is safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Security  SecurityConfig  `koanf:"security"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Records   RecordsConfig   `koanf:"records"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`       // read timeout
	WriteTimeout time.Duration `koanf:"write_timeout"` // 0 derives it from the upstream budget
	Environment  string        `koanf:"environment"`   // dev, prod or test (long forms accepted)
}

// ResponseWriteMargin is the time reserved between the records request
// deadline and the server write timeout for writing the response.
const ResponseWriteMargin = 5 * time.Second

// maxFetchSteps is the largest number of sequential upstream calls one
// records request makes (a split day).
const maxFetchSteps = 2

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// UpstreamConfig holds the positions API connection settings.
//
// Environment Variables:
//   - EXTERNAL_API_URL: base URL, path allowed (default: https://themis-clsperu.cls.fr/uda)
//   - API_LOGIN / API_PASSWORD: sent as request headers
//   - UPSTREAM_TIMEOUT: per-attempt timeout (default: 30s)
//   - UPSTREAM_RETRIES: retries after the first attempt (default: 3)
//   - UPSTREAM_RETRY_WAIT / UPSTREAM_RETRY_MAX_WAIT: backoff bounds (default: 1s / 5s)
//   - UPSTREAM_RATE_LIMIT / UPSTREAM_RATE_BURST: outbound pacing (default: 5/s, burst 5)
//   - UPSTREAM_PROBE_INTERVAL: background reachability probe, 0 disables (default: 0)
type UpstreamConfig struct {
	URL           string        `koanf:"url"`
	Login         string        `koanf:"login"`
	Password      string        `koanf:"password"`
	Timeout       time.Duration `koanf:"timeout"`
	Retries       int           `koanf:"retries"`
	RetryWait     time.Duration `koanf:"retry_wait"`
	RetryMaxWait  time.Duration `koanf:"retry_max_wait"`
	RateLimit     float64       `koanf:"rate_limit"`
	RateBurst     int           `koanf:"rate_burst"`
	ProbeInterval time.Duration `koanf:"probe_interval"`
}

// CallBudget is the worst-case duration of one upstream call: every attempt
// timing out, with the longest backoff between attempts.
func (u *UpstreamConfig) CallBudget() time.Duration {
	retries := time.Duration(u.Retries)
	return (retries+1)*u.Timeout + retries*u.RetryMaxWait
}

// RequestDeadline bounds the upstream work of one records request. It covers
// a split day in the worst case, capped so the error body can still be
// written before an explicit SERVER_WRITE_TIMEOUT.
func (c *Config) RequestDeadline() time.Duration {
	budget := maxFetchSteps * c.Upstream.CallBudget()
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout-ResponseWriteMargin < budget {
		return c.Server.WriteTimeout - ResponseWriteMargin
	}
	return budget
}

// ServerWriteTimeout is SERVER_WRITE_TIMEOUT when set, otherwise the request
// deadline plus ResponseWriteMargin.
func (c *Config) ServerWriteTimeout() time.Duration {
	if c.Server.WriteTimeout > 0 {
		return c.Server.WriteTimeout
	}
	return c.RequestDeadline() + ResponseWriteMargin
}

// SecurityConfig holds authentication and CORS settings
type SecurityConfig struct {
	AuthMode          string   `koanf:"auth_mode"` // token, jwt or none
	APIToken          string   `koanf:"api_token"`
	JWTSecret         string   `koanf:"jwt_secret"`
	CORSOrigins       []string `koanf:"cors_origins"`
	RateLimitDisabled bool     `koanf:"rate_limit_disabled"`
}

// RateLimitRule is a fixed request quota per client over a window.
type RateLimitRule struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

// RateLimitConfig holds the inbound quotas. Global applies to every
// request; the rest apply to one record route each.
type RateLimitConfig struct {
	Global    RateLimitRule `koanf:"global"`
	LastHour  RateLimitRule `koanf:"last_hour"`
	LastHours RateLimitRule `koanf:"last_hours"`
	AllDay    RateLimitRule `koanf:"all_day"`
	SelectDay RateLimitRule `koanf:"select_day"`
	ByID      RateLimitRule `koanf:"by_id"`
	DateRange RateLimitRule `koanf:"date_range"`
}

// Rules returns each quota keyed by limiter name.
func (r *RateLimitConfig) Rules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"global":     r.Global,
		"last_hour":  r.LastHour,
		"last_hours": r.LastHours,
		"all_day":    r.AllDay,
		"select_day": r.SelectDay,
		"by_id":      r.ByID,
		"date_range": r.DateRange,
	}
}

// RecordsConfig holds query planning settings.
type RecordsConfig struct {
	// DaySplitTimezone is the IANA zone in which "today" and the 11:59:59
	// split threshold are evaluated. "Local" uses the host zone.
	DaySplitTimezone string `koanf:"day_split_timezone"`
}

// Location loads DaySplitTimezone.
func (r *RecordsConfig) Location() (*time.Location, error) {
	name := r.DaySplitTimezone
	if name == "" {
		name = "Local"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("DAY_SPLIT_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
//   - LOG_QUERY_FILE: append client query entries to this file instead of the main log
type LoggingConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	Caller    bool   `koanf:"caller"`
	QueryFile string `koanf:"query_file"`
}

// Load reads configuration from defaults, the config file and environment
// variables, in that order of precedence (lowest first).
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// EnvironmentName returns the canonical short environment name: dev, prod or test.
func (c *Config) EnvironmentName() string {
	switch strings.ToLower(c.Server.Environment) {
	case "prod", "production":
		return "prod"
	case "test", "testing":
		return "test"
	default:
		return "dev"
	}
}
