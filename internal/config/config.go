// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the receitas
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the app display name.
	App App `envPrefix:"APP_"`

	// Backend holds connection settings for the managed backend (data API,
	// auth, storage buckets).
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Feed holds configuration for the background feed poller.
	Feed Feed `envPrefix:"FEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the RECEITAS_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"RECEITAS_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the display name shown in the terminal UI header.
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Backend holds connection settings for the managed backend consumed by the
// client transport layer.
type Backend struct {
	// BaseURL is the root URL of the managed backend
	// (e.g. "https://abc.supabase.co").
	// Env: BACKEND_URL
	BaseURL string `env:"URL"`

	// AnonKey is the public API key sent with every backend request.
	// Env: BACKEND_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path used for the local recipe cache and the
	// persisted session (e.g. "~/.receitas/cache.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Feed holds configuration for the background feed synchronization loop.
type Feed struct {
	// PollInterval is how often the feed poller checks for newly published
	// public recipes. A tick that lands while a cycle is still in flight is
	// dropped, not queued.
	// Env: FEED_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PageSize bounds how many rows a single feed query may return.
	// Env: FEED_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
