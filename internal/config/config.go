// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration loading order (Koanf v2, highest priority wins):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (DATA_DIR, SERVER_PORT, LOG_LEVEL, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DataConfig locates the source CSV files. The file names themselves are
// fixed (circuits.csv, races.csv, ...); only the directory is configurable.
type DataConfig struct {
	Dir string `koanf:"dir"`
}

// DatabaseConfig holds DuckDB settings. Tables are rebuilt from the CSV
// files on every start, so the default in-memory database is usually right;
// a file path is only useful for inspecting the store with the duckdb CLI.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// APIConfig bounds list-shaped responses.
type APIConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// CacheConfig controls the analytics response cache.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would only fail later
// and less clearly. It is called by Load() after all layers are applied.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("api.default_limit must be at least 1, got %d", c.API.DefaultLimit)
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("api.max_limit (%d) must not be below api.default_limit (%d)",
			c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
