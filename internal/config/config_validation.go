// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// minProductionSignKeyLen is the shortest HS256 secret accepted in production.
const minProductionSignKeyLen = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every returned error wraps one of the ErrInvalid*
// sentinels so callers can match the failing group with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Notifier.WebhookURL != "" && cfg.Notifier.Timeout <= 0 {
		return fmt.Errorf("%w: webhook timeout must be positive", ErrInvalidNotifierConfigs)
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if a.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}
	if a.AccessTokenDuration <= 0 || a.RefreshTokenDuration <= 0 || a.ResetTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost out of range", ErrInvalidAppConfigs)
	}

	if a.Environment != EnvironmentDevelopment && !a.IsProduction() {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, a.Environment)
	}
	if a.IsProduction() {
		if a.ExposeResetToken {
			return fmt.Errorf("%w: reset tokens cannot be exposed in production", ErrInvalidAppConfigs)
		}
		if len(a.TokenSignKey) < minProductionSignKeyLen {
			return fmt.Errorf("%w: token sign key must be at least %d bytes in production",
				ErrInvalidAppConfigs, minProductionSignKeyLen)
		}
	}

	return nil
}
