// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/beacongate/config.yaml",
	"/etc/beacongate/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultUpstreamURL is the positions API base used when EXTERNAL_API_URL is unset.
const DefaultUpstreamURL = "https://themis-clsperu.cls.fr/uda"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         6002,
			Host:         "0.0.0.0",
			Timeout:      30 * time.Second,
			WriteTimeout: 0, // derived
			Environment:  "dev",
		},
		Upstream: UpstreamConfig{
			URL:           DefaultUpstreamURL,
			Login:         "",
			Password:      "",
			Timeout:       30 * time.Second,
			Retries:       3,
			RetryWait:     time.Second,
			RetryMaxWait:  5 * time.Second,
			RateLimit:     5,
			RateBurst:     5,
			ProbeInterval: 0, // disabled
		},
		Security: SecurityConfig{
			AuthMode:          "token",
			APIToken:          "",
			JWTSecret:         "",
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: false,
		},
		RateLimit: RateLimitConfig{
			Global:    RateLimitRule{Requests: 100, Window: 15 * time.Minute},
			LastHour:  RateLimitRule{Requests: 100, Window: time.Hour},
			LastHours: RateLimitRule{Requests: 80, Window: time.Hour},
			AllDay:    RateLimitRule{Requests: 240, Window: time.Hour},
			SelectDay: RateLimitRule{Requests: 120, Window: time.Hour},
			ByID:      RateLimitRule{Requests: 300, Window: time.Hour},
			DateRange: RateLimitRule{Requests: 120, Window: time.Hour},
		},
		Records: RecordsConfig{
			DaySplitTimezone: "Local",
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			Caller:    false,
			QueryFile: "",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority).
	// Aliases first, so the primary names override them.
	if err := k.Load(env.Provider("", ".", aliasTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment aliases: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Names without an entry are ignored so unrelated variables never leak in.
var envMappings = map[string]string{
	// Server
	"port":                 "server.port",
	"host":                 "server.host",
	"server_timeout":       "server.timeout",
	"server_write_timeout": "server.write_timeout",
	"node_env":             "server.environment",

	// Upstream positions API
	"external_api_url":        "upstream.url",
	"api_login":               "upstream.login",
	"api_password":            "upstream.password",
	"upstream_timeout":        "upstream.timeout",
	"upstream_retries":        "upstream.retries",
	"upstream_retry_wait":     "upstream.retry_wait",
	"upstream_retry_max_wait": "upstream.retry_max_wait",
	"upstream_rate_limit":     "upstream.rate_limit",
	"upstream_rate_burst":     "upstream.rate_burst",
	"upstream_probe_interval": "upstream.probe_interval",

	// Security
	"auth_mode":           "security.auth_mode",
	"api_token":           "security.api_token",
	"jwt_secret":          "security.jwt_secret",
	"cors_origins":        "security.cors_origins",
	"rate_limit_disabled": "security.rate_limit_disabled",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Inbound quotas
	"rate_limit_global_requests":     "rate_limit.global.requests",
	"rate_limit_global_window":       "rate_limit.global.window",
	"rate_limit_last_hour_requests":  "rate_limit.last_hour.requests",
	"rate_limit_last_hour_window":    "rate_limit.last_hour.window",
	"rate_limit_last_hours_requests": "rate_limit.last_hours.requests",
	"rate_limit_last_hours_window":   "rate_limit.last_hours.window",
	"rate_limit_all_day_requests":    "rate_limit.all_day.requests",
	"rate_limit_all_day_window":      "rate_limit.all_day.window",
	"rate_limit_select_day_requests": "rate_limit.select_day.requests",
	"rate_limit_select_day_window":   "rate_limit.select_day.window",
	"rate_limit_by_id_requests":      "rate_limit.by_id.requests",
	"rate_limit_by_id_window":        "rate_limit.by_id.window",
	"rate_limit_date_range_requests": "rate_limit.date_range.requests",
	"rate_limit_date_range_window":   "rate_limit.date_range.window",

	// Records
	"day_split_timezone": "records.day_split_timezone",

	// Logging
	"log_level":      "logging.level",
	"log_format":     "logging.format",
	"log_caller":     "logging.caller",
	"log_query_file": "logging.query_file",
}

// envAliases maps alternative environment variable names to koanf paths.
// They are loaded before envMappings, so PORT, HOST and NODE_ENV win when
// both spellings are set.
var envAliases = map[string]string{
	"http_port":   "server.port",
	"http_host":   "server.host",
	"environment": "server.environment",
}

// aliasTransformFunc maps only the alias names in envAliases.
func aliasTransformFunc(key string) string {
	return envAliases[strings.ToLower(key)]
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - EXTERNAL_API_URL -> upstream.url
//   - PORT -> server.port
//   - NODE_ENV -> server.environment
//   - RATE_LIMIT_BY_ID_REQUESTS -> rate_limit.by_id.requests
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
