// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token, hashing or mode settings
	// (for example, a missing sign key or reset-token exposure in production).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing listen addresses or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNotifierConfigs indicates an unusable reset-token webhook setup.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)

// ErrInvalidNetAddress is returned by [NetAddress.Set] for a value that is
// not a "host:port" pair with a port in 1-65535.
var ErrInvalidNetAddress = errors.New("invalid net address")
