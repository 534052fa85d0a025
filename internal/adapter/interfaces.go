// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers password reset tokens to the outside world.
//
// Two [ResetNotifier] implementations are provided: a webhook notifier that
// POSTs a signed JSON payload to a configured URL, and a log notifier that
// only records that a token was issued. [NewResetNotifier] picks one based
// on configuration.
//
// Non-2xx webhook responses are mapped to the sentinel errors in errors.go
// by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// ResetNotifier hands a freshly issued reset token to its recipient.
// Implementations must never log the token value.
type ResetNotifier interface {
	DeliverResetToken(ctx context.Context, user models.User, resetToken models.Token) error
}
