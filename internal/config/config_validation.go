// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. All violations are reported at once, each wrapping the
// sentinel of its group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if len(cfg.App.TokenSignKey) < MinTokenSignKeyLength {
		errs = append(errs, fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: server address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs))
	}
	if cfg.Server.AuthRateLimit < 0 || cfg.Server.AuthRateBurst < 0 {
		errs = append(errs, fmt.Errorf("%w: auth rate limit must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.Workers.HashConcurrency < 0 {
		errs = append(errs, fmt.Errorf("%w: hash concurrency must not be negative", ErrInvalidWorkerConfigs))
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
		}
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
