// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer          = "go-auth-keeper"
	defaultAccessTokenDuration  = time.Hour
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
	defaultResetTokenDuration   = time.Hour
	defaultHTTPAddress          = "localhost:8080"
	defaultRequestTimeout       = 30 * time.Second
	defaultNotifierTimeout      = 10 * time.Second
	defaultLogLevel             = "info"
)

// defaultConfig is the lowest-priority source fed into the builder.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          defaultTokenIssuer,
			AccessTokenDuration:  defaultAccessTokenDuration,
			RefreshTokenDuration: defaultRefreshTokenDuration,
			ResetTokenDuration:   defaultResetTokenDuration,
			PasswordHashCost:     bcrypt.DefaultCost,
			Environment:          EnvironmentDevelopment,
			LogLevel:             defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Notifier: Notifier{
			Timeout: defaultNotifierTimeout,
		},
	}
}
