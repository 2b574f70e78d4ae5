// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Command server runs the Gridline HTTP service: it loads the CSV
// datasets into DuckDB at startup and serves the analytics API and the
// dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paddocklab/gridline/internal/api"
	"github.com/paddocklab/gridline/internal/cache"
	"github.com/paddocklab/gridline/internal/config"
	"github.com/paddocklab/gridline/internal/database"
	"github.com/paddocklab/gridline/internal/ingest"
	"github.com/paddocklab/gridline/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridline: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Str("database", cfg.Database.Path).
		Msg("Starting Gridline")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing database")
		}
	}()

	loadCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	catalog, err := ingest.New(db, cfg.Data.Dir).LoadAll(loadCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	handler := api.NewHandler(db, cache.New(cfg.Cache.TTL), catalog, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
