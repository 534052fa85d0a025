// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")

	// ErrInvalidToken covers every token that is malformed, forged, expired,
	// issued for another purpose or whose subject no longer resolves.
	ErrInvalidToken = errors.New("invalid token")

	ErrInvalidRefreshToken = fmt.Errorf("invalid refresh token: %w", ErrInvalidToken)
	ErrInvalidResetToken   = fmt.Errorf("invalid or expired reset token: %w", ErrInvalidToken)
	ErrEmailNotFound       = fmt.Errorf("email not found: %w", ErrUserNotFound)

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrResetDeliveryFailed = errors.New("reset token delivery failed")

	ErrServiceUnavailable = errors.New("service unavailable")
)
