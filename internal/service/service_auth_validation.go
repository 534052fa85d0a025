// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// AuthValidationService rejects malformed input before it reaches the
// wrapped AuthService. Failures wrap [ErrInvalidDataProvided] and the
// validator's own error.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) RefreshAccessToken(ctx context.Context, refreshToken string) (models.AccessTokenResponse, error) {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RefreshAccessToken(ctx, refreshToken)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, email string) (models.PasswordResetTicket, error) {
	if err := v.validator.Validate(ctx, models.PasswordResetRequest{Email: email}); err != nil {
		return models.PasswordResetTicket{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RequestPasswordReset(ctx, email)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, request models.PasswordReset) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ResetPassword(ctx, request)
}

// Authorize is passed through; an empty or malformed token is an auth
// failure, not a validation one.
func (v *AuthValidationService) Authorize(ctx context.Context, accessToken string) (models.User, error) {
	return v.inner.Authorize(ctx, accessToken)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
