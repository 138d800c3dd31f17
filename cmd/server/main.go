// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/beacongate/docs" // generated swagger docs
	"github.com/tomtom215/beacongate/internal/api"
	"github.com/tomtom215/beacongate/internal/auth"
	"github.com/tomtom215/beacongate/internal/config"
	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/records"
	"github.com/tomtom215/beacongate/internal/supervisor"
	"github.com/tomtom215/beacongate/internal/supervisor/services"
	"github.com/tomtom215/beacongate/internal/upstream"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.EnvironmentName()).
		Str("upstream_url", cfg.Upstream.URL).
		Str("auth_mode", cfg.Security.AuthMode).
		Dur("request_deadline", cfg.RequestDeadline()).
		Dur("write_timeout", cfg.ServerWriteTimeout()).
		Msg("Starting Beacongate")

	loc, err := cfg.Records.Location()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid day-split timezone")
	}
	logging.Info().Str("timezone", loc.String()).Msg("Day-split timezone loaded")

	client := upstream.NewClient(&cfg.Upstream)
	recordsService := records.NewService(client, records.SystemClock{}, loc)

	authMiddleware, err := auth.NewMiddleware(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authentication")
	}
	warnSecurity(cfg)

	// An empty LOG_QUERY_FILE writes query entries through the main logger.
	queryLog, err := logging.NewQueryLogger(cfg.Logging.QueryFile)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Logging.QueryFile).Msg("Failed to open query log")
	}
	defer func() {
		if err := queryLog.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing query log")
		}
	}()

	handler := api.NewHandler(recordsService, client, cfg, version)
	chiMiddleware := api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg))
	router := api.NewRouter(handler, authMiddleware, chiMiddleware, queryLog)

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.ServerWriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))
	if cfg.Upstream.ProbeInterval > 0 {
		tree.AddUpstreamService(services.NewUpstreamProbeService(client, cfg.Upstream.ProbeInterval))
		logging.Info().Dur("interval", cfg.Upstream.ProbeInterval).Msg("Upstream probe enabled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Beacongate stopped")
}

// warnSecurity logs loud warnings for settings that are only safe in development.
func warnSecurity(cfg *config.Config) {
	if auth.Mode(cfg.Security.AuthMode) == auth.ModeNone {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  Vessel positions are served to anyone who can reach this port.")
		logging.Warn().Msg("============================================================")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
}
