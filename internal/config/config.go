// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields that no source has set.
const (
	DefaultRemoteAddress      = "https://pr0.wibbly-wobbly.de/api/comments/v1/"
	DefaultRemoteTimeout      = 15 * time.Second
	DefaultDSN                = "faved-comments.db"
	DefaultServerAddress      = "localhost:8090"
	DefaultServerTimeout      = 30 * time.Second
	DefaultRefreshInterval    = 5 * time.Minute
	DefaultAppVersion         = "dev"
	DefaultLogLevel           = "debug"
	defaultConfigSourcesCount = 3
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as version and logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote favorites service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local record cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Session holds the optional initial credential.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile, when set, redirects logs to that file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the remote favorites service.
type Adapter struct {
	// HTTPAddress is the base URL of the favorites API
	// (e.g. "https://pr0.wibbly-wobbly.de/api/comments/v1/").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "faved-comments.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the local HTTP API used by UI consumers.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long a mutation request waits for a
	// credential before answering 504.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the initial credential.
type Session struct {
	// Token is the opaque user credential. Empty means logged out.
	// Env: SESSION_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds background refresh settings.
type Workers struct {
	// RefreshInterval is how often the favorites cache is re-fetched.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// KeepOnRefreshError keeps the last known favorites when a refresh fails
	// instead of replacing them with an empty set.
	// Env: WORKERS_KEEP_ON_REFRESH_ERROR
	KeepOnRefreshError bool `env:"KEEP_ON_REFRESH_ERROR"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultRemoteAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRemoteTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}
