// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Package models defines the shared data structures used across the
// Gridline application: the API response envelope, the analytics result
// types returned by the database package, and the dataset catalog that
// tracks which source files loaded at startup.
package models
