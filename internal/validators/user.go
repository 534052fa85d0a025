// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets a plaintext password being set. Length limits
	// apply; login passwords are only checked for presence.
	FieldPassword = "password"

	// FieldPhone targets the optional phone number.
	FieldPhone = "phone"

	// FieldRefreshToken targets the refresh token of a refresh request.
	FieldRefreshToken = "refresh_token"

	// FieldResetToken targets the reset token of a password reset.
	FieldResetToken = "reset_token"

	// FieldNewPassword targets the replacement password of a password reset.
	FieldNewPassword = "new_password"
)

const (
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 8
	MinPhoneDigits    = 11
)

// UserValidator checks the account requests accepted by the auth service.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(*value, fields...)

	case models.PasswordResetRequest:
		return v.validatePasswordResetRequest(value, fields...)
	case *models.PasswordResetRequest:
		return v.validatePasswordResetRequest(*value, fields...)

	case models.PasswordReset:
		return v.validatePasswordReset(value, fields...)
	case *models.PasswordReset:
		return v.validatePasswordReset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest applies the checks in order: presence, email
// shape, password length, phone.
func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPhone}
	}

	if request.Email == "" || request.Password == "" {
		return ErrEmailAndPasswordRequired
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !strings.Contains(request.Email, "@") {
				return ErrInvalidEmailFormat
			}
		case FieldPassword:
			if err := validateNewPassword(request.Password); err != nil {
				return err
			}
		case FieldPhone:
			if request.Phone != "" && !isValidPhone(request.Phone) {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail, FieldPassword:
			if request.Email == "" || request.Password == "" {
				return ErrEmailAndPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateRefreshRequest(request models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(request.RefreshToken) == "" {
				return ErrRefreshTokenRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validatePasswordResetRequest(request models.PasswordResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmailRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validatePasswordReset(request models.PasswordReset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResetToken, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldResetToken:
			if strings.TrimSpace(request.ResetToken) == "" {
				return ErrResetTokenRequired
			}
		case FieldNewPassword:
			if request.NewPassword == "" {
				return ErrNewPasswordRequired
			}
			if err := validateNewPassword(request.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateNewPassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > crypto.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// isValidPhone accepts ASCII digits only.
func isValidPhone(phone string) bool {
	if len(phone) < MinPhoneDigits {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
