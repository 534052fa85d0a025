// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError is a rule violation whose Message is safe to show to the
// client as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// User input rule violations. Match with [errors.Is]; extract the client
// message with [errors.As] into *ValidationError.
var (
	ErrEmailAndPasswordRequired = &ValidationError{Field: FieldEmail, Message: "Email and password are required"}
	ErrInvalidEmailFormat       = &ValidationError{Field: FieldEmail, Message: "Invalid email format"}
	ErrPasswordTooShort         = &ValidationError{Field: FieldPassword, Message: "Password must be at least 8 characters long"}
	ErrPasswordTooLong          = &ValidationError{Field: FieldPassword, Message: "Password must be at most 72 bytes long"}
	ErrInvalidPhone             = &ValidationError{Field: FieldPhone, Message: "Phone number must be at least 11 digits"}
	ErrEmailRequired            = &ValidationError{Field: FieldEmail, Message: "Email is required"}
	ErrRefreshTokenRequired     = &ValidationError{Field: FieldRefreshToken, Message: "Refresh token is required"}
	ErrResetTokenRequired       = &ValidationError{Field: FieldResetToken, Message: "Reset token and new password are required"}
	ErrNewPasswordRequired      = &ValidationError{Field: FieldNewPassword, Message: "Reset token and new password are required"}
)
