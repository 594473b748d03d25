// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the records
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the auth collection and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database that keeps
	// flash messages and the persisted auth session.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the record store address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional arguments left after flag parsing
	// (the CLI sub-command and its operands). Never read from env or JSON.
	Command []string
}

// App holds application-level configuration values.
type App struct {
	// AuthCollection is the name of the auth collection used for login and
	// registration (e.g. "users").
	// Env: APP_AUTH_COLLECTION
	AuthCollection string `env:"AUTH_COLLECTION"`

	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file client logs are appended to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// OtelEndpoint is the OTLP/HTTP collector URL. Tracing is off when empty.
	// Env: APP_OTEL_ENDPOINT
	OtelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "records.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the record store transport.
type Adapter struct {
	// HTTPAddress is the base URL of the record store
	// (e.g. "http://127.0.0.1:8090"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
