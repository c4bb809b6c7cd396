// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All problems are
// reported at once, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: non-positive token duration", ErrInvalidAppConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs))
	}

	if cfg.Listing.DefaultPageSize <= 0 || cfg.Listing.MaxPageSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: page sizes must be positive", ErrInvalidListingConfigs))
	} else if cfg.Listing.DefaultPageSize > cfg.Listing.MaxPageSize {
		errs = append(errs, fmt.Errorf("%w: default page size exceeds max page size", ErrInvalidListingConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.PageSize <= 0 {
		return ErrInvalidListingConfigs
	}

	return nil
}
