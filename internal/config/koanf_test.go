// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setRequiredEnv clears the environment and sets the minimum for a valid dev config.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Clearenv()
	os.Setenv("API_LOGIN", "gateway")
	os.Setenv("API_PASSWORD", "s3cret-upstream")
	os.Setenv("API_TOKEN", "test-token-0123456789")
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 6002 {
		t.Errorf("Server.Port = %d, want 6002", cfg.Server.Port)
	}
	if cfg.Server.Environment != "dev" {
		t.Errorf("Server.Environment = %q, want dev", cfg.Server.Environment)
	}
	if cfg.Upstream.URL != DefaultUpstreamURL {
		t.Errorf("Upstream.URL = %q, want %q", cfg.Upstream.URL, DefaultUpstreamURL)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.Retries != 3 {
		t.Errorf("Upstream.Retries = %d, want 3", cfg.Upstream.Retries)
	}
	if cfg.Upstream.ProbeInterval != 0 {
		t.Errorf("Upstream.ProbeInterval = %v, want 0 (disabled)", cfg.Upstream.ProbeInterval)
	}
	if cfg.Security.AuthMode != "token" {
		t.Errorf("Security.AuthMode = %q, want token", cfg.Security.AuthMode)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Records.DaySplitTimezone != "Local" {
		t.Errorf("Records.DaySplitTimezone = %q, want Local", cfg.Records.DaySplitTimezone)
	}

	quotas := []struct {
		name   string
		rule   RateLimitRule
		reqs   int
		window time.Duration
	}{
		{"global", cfg.RateLimit.Global, 100, 15 * time.Minute},
		{"last_hour", cfg.RateLimit.LastHour, 100, time.Hour},
		{"last_hours", cfg.RateLimit.LastHours, 80, time.Hour},
		{"all_day", cfg.RateLimit.AllDay, 240, time.Hour},
		{"select_day", cfg.RateLimit.SelectDay, 120, time.Hour},
		{"by_id", cfg.RateLimit.ByID, 300, time.Hour},
		{"date_range", cfg.RateLimit.DateRange, 120, time.Hour},
	}
	for _, q := range quotas {
		if q.rule.Requests != q.reqs || q.rule.Window != q.window {
			t.Errorf("RateLimit.%s = %d/%v, want %d/%v", q.name, q.rule.Requests, q.rule.Window, q.reqs, q.window)
		}
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PORT", "server.port"},
		{"NODE_ENV", "server.environment"},
		{"SERVER_WRITE_TIMEOUT", "server.write_timeout"},
		{"EXTERNAL_API_URL", "upstream.url"},
		{"API_LOGIN", "upstream.login"},
		{"API_PASSWORD", "upstream.password"},
		{"UPSTREAM_RETRIES", "upstream.retries"},
		{"API_TOKEN", "security.api_token"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_BY_ID_REQUESTS", "rate_limit.by_id.requests"},
		{"RATE_LIMIT_GLOBAL_WINDOW", "rate_limit.global.window"},
		{"DAY_SPLIT_TIMEZONE", "records.day_split_timezone"},
		{"LOG_QUERY_FILE", "logging.query_file"},

		// Unmapped
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAliasTransformFunc(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":   "server.port",
		"HTTP_HOST":   "server.host",
		"ENVIRONMENT": "server.environment",
		"PORT":        "",
		"NODE_ENV":    "",
	}
	for in, want := range tests {
		if got := aliasTransformFunc(in); got != want {
			t.Errorf("aliasTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadWithKoanfPrimaryEnvNamesWin(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv("HTTP_PORT", "8000")
	os.Setenv("PORT", "7000")
	os.Setenv("ENVIRONMENT", "prod")
	os.Setenv("NODE_ENV", "test")
	os.Setenv("HTTP_HOST", "10.0.0.1")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from PORT", cfg.Server.Port)
	}
	if !cfg.IsTest() {
		t.Errorf("Server.Environment = %q, want test from NODE_ENV", cfg.Server.Environment)
	}
	if cfg.Server.Host != "10.0.0.1" {
		t.Errorf("Server.Host = %q, want alias value when HOST is unset", cfg.Server.Host)
	}

	os.Unsetenv("PORT")
	cfg, err = LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000 from HTTP_PORT alone", cfg.Server.Port)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 7000\n"), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)
	if got := findConfigFile(); got != configPath {
		t.Errorf("findConfigFile() = %q, want %q", got, configPath)
	}

	os.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got == configPath {
		t.Error("findConfigFile() should ignore a CONFIG_PATH that does not exist")
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv("PORT", "9000")
	os.Setenv("NODE_ENV", "test")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("UPSTREAM_TIMEOUT", "10s")
	os.Setenv("EXTERNAL_API_URL", "http://upstream.local:8080/uda")
	os.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")
	os.Setenv("RATE_LIMIT_BY_ID_REQUESTS", "50")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if !cfg.IsTest() {
		t.Errorf("expected test environment, got %q", cfg.Server.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Upstream.Timeout != 10*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 10s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.URL != "http://upstream.local:8080/uda" {
		t.Errorf("Upstream.URL = %q", cfg.Upstream.URL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example.org" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.RateLimit.ByID.Requests != 50 {
		t.Errorf("RateLimit.ByID.Requests = %d, want 50", cfg.RateLimit.ByID.Requests)
	}

	// Defaults still applied
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.RateLimit.AllDay.Requests != 240 {
		t.Errorf("RateLimit.AllDay.Requests = %d, want 240 (default)", cfg.RateLimit.AllDay.Requests)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
server:
  port: 8888
  environment: "prod"

upstream:
  url: "https://positions.example.net/api"
  login: "file-login"
  password: "file-password"

security:
  api_token: "f1le-t0ken-a8c1d"
  cors_origins:
    - "https://ops.example.net"

records:
  day_split_timezone: "America/Lima"

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production, got %q", cfg.Server.Environment)
	}
	if cfg.Upstream.Login != "file-login" {
		t.Errorf("Upstream.Login = %q, want file-login", cfg.Upstream.Login)
	}
	loc, err := cfg.Records.Location()
	if err != nil {
		t.Fatalf("Records.Location() error = %v", err)
	}
	if loc.String() != "America/Lima" {
		t.Errorf("Records.Location() = %s, want America/Lima", loc)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Upstream.Retries != 3 {
		t.Errorf("Upstream.Retries = %d, want 3 (default)", cfg.Upstream.Retries)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8888\nlogging:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	setRequiredEnv(t)
	os.Setenv(ConfigPathEnvVar, configPath)
	os.Setenv("PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env should override file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing login outside test",
			env:     map[string]string{"API_LOGIN": ""},
			wantErr: "API_LOGIN",
		},
		{
			name:    "missing token in token mode",
			env:     map[string]string{"API_TOKEN": ""},
			wantErr: "API_TOKEN",
		},
		{
			name:    "invalid auth mode",
			env:     map[string]string{"AUTH_MODE": "basic"},
			wantErr: "AUTH_MODE",
		},
		{
			name:    "short jwt secret",
			env:     map[string]string{"AUTH_MODE": "jwt", "JWT_SECRET": "short"},
			wantErr: "JWT_SECRET",
		},
		{
			name:    "upstream url with query",
			env:     map[string]string{"EXTERNAL_API_URL": "https://x.example.net/uda?x=1"},
			wantErr: "EXTERNAL_API_URL",
		},
		{
			name:    "upstream url bad scheme",
			env:     map[string]string{"EXTERNAL_API_URL": "ftp://x.example.net"},
			wantErr: "EXTERNAL_API_URL",
		},
		{
			name:    "write timeout shorter than one upstream attempt",
			env:     map[string]string{"UPSTREAM_TIMEOUT": "30s", "SERVER_WRITE_TIMEOUT": "30s"},
			wantErr: "SERVER_WRITE_TIMEOUT",
		},
		{
			name:    "unknown environment",
			env:     map[string]string{"NODE_ENV": "staging"},
			wantErr: "NODE_ENV",
		},
		{
			name:    "auth none in production",
			env:     map[string]string{"NODE_ENV": "prod", "AUTH_MODE": "none"},
			wantErr: "AUTH_MODE=none",
		},
		{
			name:    "placeholder token in production",
			env:     map[string]string{"NODE_ENV": "production", "API_TOKEN": "CHANGEME-token"},
			wantErr: "placeholder",
		},
		{
			name:    "bad timezone",
			env:     map[string]string{"DAY_SPLIT_TIMEZONE": "Mars/Olympus_Mons"},
			wantErr: "DAY_SPLIT_TIMEZONE",
		},
		{
			name:    "zero quota",
			env:     map[string]string{"RATE_LIMIT_ALL_DAY_REQUESTS": "0"},
			wantErr: "rate_limit.all_day.requests",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				if v == "" {
					os.Unsetenv(k)
					continue
				}
				os.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadWithKoanfTestEnvironmentSkipsCredentials(t *testing.T) {
	os.Clearenv()
	os.Setenv("NODE_ENV", "test")
	os.Setenv("AUTH_MODE", "none")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.EnvironmentName() != "test" {
		t.Errorf("EnvironmentName() = %q, want test", cfg.EnvironmentName())
	}
}

func TestLoadWithKoanfRateLimitDisabledSkipsQuotaChecks(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv("RATE_LIMIT_DISABLED", "true")
	os.Setenv("RATE_LIMIT_GLOBAL_REQUESTS", "0")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("expected rate limiting to be disabled")
	}
}
