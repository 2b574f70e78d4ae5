// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML
// config file, and environment variables.
package config
