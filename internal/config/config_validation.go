// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"time"
)

const (
	// DriverPostgres selects the PostgreSQL storage backend.
	DriverPostgres = "postgres"
	// DriverSQLite selects the SQLite storage backend.
	DriverSQLite = "sqlite"

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultBcryptCost     = 10
	defaultMaxOpenConns   = 10
	defaultLogLevel       = "info"
	defaultVersion        = "dev"
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, cfg.Storage.DB.Driver) {
		return ErrUnsupportedDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return ErrInvalidAppConfigs
	}

	return nil
}
