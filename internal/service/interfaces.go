// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/internal/token"
	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the account and session flows.
type AuthService interface {
	// Register creates an account. Duplicate emails fail with
	// [ErrEmailAlreadyRegistered].
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login exchanges credentials for an access/refresh token pair. Unknown
	// email and wrong password both fail with [ErrInvalidCredentials].
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// RefreshAccessToken mints a new access token from a refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (models.AccessTokenResponse, error)

	// RequestPasswordReset issues a single-use reset token for email and
	// hands it to the configured [ResetNotifier].
	RequestPasswordReset(ctx context.Context, email string) (models.PasswordResetTicket, error)

	// ResetPassword replaces the password of the user a reset token was
	// issued to. The token stops verifying once the password changes.
	ResetPassword(ctx context.Context, request models.PasswordReset) error

	// Authorize resolves the user an access token belongs to.
	Authorize(ctx context.Context, accessToken string) (models.User, error)
}

// TokenCodec issues and verifies purpose-tagged tokens.
type TokenCodec interface {
	Issue(userID int64, purpose models.TokenPurpose, opts ...token.IssueOption) (models.Token, error)
	Parse(tokenString string, purpose models.TokenPurpose) (models.Token, error)
}

// ResetNotifier delivers password reset tokens out of band.
type ResetNotifier interface {
	DeliverResetToken(ctx context.Context, user models.User, resetToken models.Token) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
