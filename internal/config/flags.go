// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a [flag.Value] for listen addresses.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "1h")
//	-refresh-token-duration refresh token lifetime (e.g., "720h")
//	-reset-token-duration password reset token lifetime (e.g., "1h")
//	-env runtime environment (development or production)
//	-expose-reset-token return reset tokens inline (non-production only)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var accessTokenDuration, refreshTokenDuration, resetTokenDuration time.Duration
	var environment, logLevel string
	var exposeResetToken bool
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("go-auth-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g., 1h)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g., 720h)")
	fs.DurationVar(&resetTokenDuration, "reset-token-duration", 0, "Password reset token lifetime (e.g., 1h)")
	fs.StringVar(&environment, "env", "", "Runtime environment (development or production)")
	fs.BoolVar(&exposeResetToken, "expose-reset-token", false, "Return reset tokens in responses (non-production only)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			ResetTokenDuration:   resetTokenDuration,
			Environment:          environment,
			ExposeResetToken:     exposeResetToken,
			LogLevel:             logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in "host:port" form, bracketing IPv6 hosts.
// An unset address is empty.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty, a name or an IP literal
// (IPv6 in brackets).
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be a number in range 1-65535", ErrInvalidNetAddress, rawPort)
	}

	a.Host = host
	a.Port = port
	return nil
}
