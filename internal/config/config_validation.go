// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported database/sql drivers of the backend.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

var sessionSchemes = []string{"memory://", "json://", "sqlite://", "bolt://"}

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of which binary consumes them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	if cfg.Workers.ActivityQueueSize < 0 {
		return fmt.Errorf("%w: negative activity queue size", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !validSessionDSN(cfg.Storage.SessionDSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Workers.ActivityQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.DB.Driver != DriverSQLite && cfg.DB.Driver != DriverPostgres {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.DB.Driver)
	}

	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func validSessionDSN(dsn string) bool {
	for _, scheme := range sessionSchemes {
		if !strings.HasPrefix(dsn, scheme) {
			continue
		}
		if scheme == "memory://" {
			return true
		}
		return strings.TrimPrefix(dsn, scheme) != ""
	}
	return false
}
