// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package config provides centralized configuration management for Beacongate.

Configuration is loaded once at startup with Koanf v2 from three layers:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, ./config.yaml or /etc/beacongate/config.yaml
 3. Environment variables, mapped explicitly in envMappings

The resulting *Config is validated and then injected into constructors.
Nothing reads the environment after Load returns.

# Environment Variables

Server (the first name wins when both spellings are set):
  - PORT / HTTP_PORT: Listen port (default: 6002)
  - HOST / HTTP_HOST: Bind address (default: 0.0.0.0)
  - SERVER_TIMEOUT: Read timeout (default: 30s)
  - SERVER_WRITE_TIMEOUT: Write timeout; unset derives it from the upstream
    budget so a slow split day still gets its error body
  - NODE_ENV / ENVIRONMENT: dev, prod or test (default: dev)

Upstream positions API:
  - EXTERNAL_API_URL (default: https://themis-clsperu.cls.fr/uda)
  - API_LOGIN, API_PASSWORD: required outside NODE_ENV=test
  - UPSTREAM_TIMEOUT, UPSTREAM_RETRIES, UPSTREAM_RETRY_WAIT, UPSTREAM_RETRY_MAX_WAIT
  - UPSTREAM_RATE_LIMIT, UPSTREAM_RATE_BURST: outbound pacing
  - UPSTREAM_PROBE_INTERVAL: background probe, 0 disables

Security:
  - AUTH_MODE: token, jwt or none (default: token)
  - API_TOKEN: shared bearer token for AUTH_MODE=token
  - JWT_SECRET: HS256 secret for AUTH_MODE=jwt, at least 32 characters
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_DISABLED: turn off inbound quotas

Inbound quotas, each as RATE_LIMIT_<NAME>_REQUESTS and RATE_LIMIT_<NAME>_WINDOW
where NAME is GLOBAL, LAST_HOUR, LAST_HOURS, ALL_DAY, SELECT_DAY, BY_ID or
DATE_RANGE.

Records:
  - DAY_SPLIT_TIMEZONE: zone for "today" and the noon split (default: Local)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - LOG_QUERY_FILE: append client query entries to a dedicated file

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
