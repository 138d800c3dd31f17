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

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateWriteTimeout(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if _, err := c.Records.Location(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the accepted ENVIRONMENT / NODE_ENV values
var validEnvironments = map[string]bool{
	"dev":         true,
	"development": true,
	"prod":        true,
	"production":  true,
	"test":        true,
	"testing":     true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvironments[strings.ToLower(c.Server.Environment)] {
		return fmt.Errorf("NODE_ENV must be one of: dev, prod, test")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must not be negative")
	}
	return nil
}

// validateWriteTimeout requires an explicit write timeout to leave room for at
// least one full upstream attempt plus the response write. Records requests
// are then cut off by their deadline, never by the server.
func (c *Config) validateWriteTimeout() error {
	if c.Server.WriteTimeout == 0 {
		return nil
	}
	minimum := c.Upstream.Timeout + ResponseWriteMargin
	if c.Server.WriteTimeout < minimum {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be at least UPSTREAM_TIMEOUT + %s (%s)", ResponseWriteMargin, minimum)
	}
	return nil
}

// validateUpstream validates the positions API settings
func (c *Config) validateUpstream() error {
	if err := validateHTTPURL(c.Upstream.URL, "EXTERNAL_API_URL"); err != nil {
		return err
	}

	if err := c.validateUpstreamCredentials(); err != nil {
		return err
	}

	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.Upstream.Retries < 0 || c.Upstream.Retries > 10 {
		return fmt.Errorf("UPSTREAM_RETRIES must be between 0 and 10")
	}
	if c.Upstream.RetryWait <= 0 || c.Upstream.RetryMaxWait < c.Upstream.RetryWait {
		return fmt.Errorf("UPSTREAM_RETRY_WAIT must be positive and not exceed UPSTREAM_RETRY_MAX_WAIT")
	}
	if c.Upstream.RateLimit <= 0 || c.Upstream.RateBurst < 1 {
		return fmt.Errorf("UPSTREAM_RATE_LIMIT and UPSTREAM_RATE_BURST must be positive")
	}
	if c.Upstream.ProbeInterval < 0 {
		return fmt.Errorf("UPSTREAM_PROBE_INTERVAL must not be negative")
	}
	return nil
}

// validateUpstreamCredentials requires login and password outside the test environment
func (c *Config) validateUpstreamCredentials() error {
	if c.IsTest() {
		return nil
	}
	if c.Upstream.Login == "" {
		return fmt.Errorf("API_LOGIN is required")
	}
	if c.Upstream.Password == "" {
		return fmt.Errorf("API_PASSWORD is required")
	}
	if c.IsProduction() && (containsPlaceholder(c.Upstream.Login) || containsPlaceholder(c.Upstream.Password)) {
		return fmt.Errorf("API_LOGIN or API_PASSWORD contains a placeholder value - set the real upstream credentials")
	}
	return nil
}

// validAuthModes defines the allowed authentication modes
var validAuthModes = map[string]bool{
	"token": true,
	"jwt":   true,
	"none":  true,
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateAuthMode(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	switch c.Security.AuthMode {
	case "token":
		return c.validateAPIToken()
	case "jwt":
		return c.validateJWTSecret()
	default:
		return nil
	}
}

// validateAuthMode checks if auth mode is valid
func (c *Config) validateAuthMode() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: token, jwt, none")
	}

	// Refuse to start unauthenticated in production
	if c.Security.AuthMode == "none" && c.IsProduction() {
		return fmt.Errorf("AUTH_MODE=none is not allowed when NODE_ENV=prod. " +
			"Set AUTH_MODE=token with API_TOKEN, or use NODE_ENV=dev for local testing")
	}
	return nil
}

// validateAPIToken validates the shared bearer token
func (c *Config) validateAPIToken() error {
	if c.Security.APIToken == "" {
		return fmt.Errorf("API_TOKEN is required when AUTH_MODE is token")
	}
	if c.IsProduction() && containsPlaceholder(c.Security.APIToken) {
		return fmt.Errorf("API_TOKEN contains a placeholder value - generate a secure token with: openssl rand -hex 32")
	}
	return nil
}

// validateJWTSecret validates the JWT secret configuration
func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for security")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// validateCORS rejects wildcard origins in production when no authentication
// protects the records.
func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.Security.AuthMode == "none" && c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed in production with authentication disabled")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = 24 * time.Hour
)

// validateRateLimits validates every quota when rate limiting is enabled.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	for name, rule := range c.RateLimit.Rules() {
		if rule.Requests < minRateLimitRequests || rule.Requests > maxRateLimitRequests {
			return fmt.Errorf("rate_limit.%s.requests must be between %d and %d", name, minRateLimitRequests, maxRateLimitRequests)
		}
		if rule.Window < minRateLimitWindow || rule.Window > maxRateLimitWindow {
			return fmt.Errorf("rate_limit.%s.window must be between %v and %v", name, minRateLimitWindow, maxRateLimitWindow)
		}
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.EnvironmentName() == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.EnvironmentName() == "dev"
}

// IsTest returns true if the application is running under NODE_ENV=test.
func (c *Config) IsTest() bool {
	return c.EnvironmentName() == "test"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns are values that indicate the operator forgot to set a
// real credential.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"YOUR_TOKEN",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains a common placeholder pattern
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
