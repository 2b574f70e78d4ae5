// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should validate, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }},
		{"zero default limit", func(c *Config) { c.API.DefaultLimit = 0 }},
		{"max below default", func(c *Config) { c.API.MaxLimit = 5; c.API.DefaultLimit = 10 }},
		{"negative cache ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DATA_DIR", "data.dir"},
		{"DATABASE_MAX_MEMORY", "database.max_memory"},
		{"SERVER_PORT", "server.port"},
		{"SERVER_HOST", "server.host"},
		{"API_DEFAULT_LIMIT", "api.default_limit"},
		{"CACHE_TTL", "cache.ttl"},
		{"LOGGING_LEVEL", "logging.level"},
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_UNRELATED", ""},
	}

	for _, tt := range tests {
		if got := envTransform(tt.input); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_DIR", "/tmp/gridline-data")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/tmp/gridline-data" {
		t.Errorf("expected data dir override, got %q", cfg.Data.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Logging.Level)
	}
	// Untouched settings keep their defaults.
	if cfg.API.DefaultLimit != 10 {
		t.Errorf("expected default limit 10, got %d", cfg.API.DefaultLimit)
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}
