// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

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

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gridline/config.yaml",
	"/etc/gridline/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. These are
// loaded first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./data",
		},
		Database: DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
			Threads:   0, // 0 = use runtime.NumCPU()
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8036,
			Timeout: 30 * time.Second,
		},
		API: APIConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults from struct
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// DATA_DIR -> data.dir, SERVER_PORT -> server.port, etc.
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
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

// envSections maps environment variable prefixes to config sections.
// Variables outside these sections are ignored so unrelated environment
// noise cannot leak into the configuration.
var envSections = map[string]string{
	"DATA_":     "data.",
	"DATABASE_": "database.",
	"SERVER_":   "server.",
	"API_":      "api.",
	"CACHE_":    "cache.",
	"LOGGING_":  "logging.",
}

// envTransform converts an environment variable name to a koanf path.
// LOG_LEVEL and LOG_FORMAT are kept as short aliases for the logging
// section since they are the variables people actually set.
func envTransform(name string) string {
	switch name {
	case "LOG_LEVEL":
		return "logging.level"
	case "LOG_FORMAT":
		return "logging.format"
	case "LOG_CALLER":
		return "logging.caller"
	}
	for prefix, section := range envSections {
		if strings.HasPrefix(name, prefix) {
			rest := strings.TrimPrefix(name, prefix)
			return section + strings.ToLower(rest)
		}
	}
	return "" // skip unrelated variables
}

// findConfigFile returns the first config file found, or "".
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
