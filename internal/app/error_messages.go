// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-auth-keeper handlers, middleware and services.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of JSON response bodies. Keeping them in one place keeps
// the wording of the API consistent.
package app

const (
	// MsgUserRegistered is returned after a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgResetLinkSent is returned after a password reset token was issued
	// and handed to the reset notifier.
	MsgResetLinkSent = "Password reset link sent"

	// MsgPasswordChanged is returned after a successful password reset.
	MsgPasswordChanged = "Password reset successful"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation
	// and no more specific reason is available.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgEmailAlreadyRegistered is returned when a registration reuses an
	// existing email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidRefreshToken is returned when a refresh token is malformed,
	// expired, of another purpose or names a deleted user.
	MsgInvalidRefreshToken = "Invalid refresh token"

	// MsgInvalidResetToken is returned when a reset token is malformed,
	// expired, of another purpose or already used.
	MsgInvalidResetToken = "Invalid or expired reset token"

	// MsgTokenMissing is returned when a protected route is called without
	// an Authorization header.
	MsgTokenMissing = "Token is missing"

	// MsgTokenInvalid is returned for any other bearer token failure.
	MsgTokenInvalid = "Token is invalid"

	// MsgEmailNotFound is returned when a reset is requested for an unknown
	// email.
	MsgEmailNotFound = "Email not found"

	// MsgUserNotFound is returned when the user behind a valid token no
	// longer exists.
	MsgUserNotFound = "User not found"

	// MsgHealthy is returned by the health endpoint while the store answers.
	MsgHealthy = "OK"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgResetDeliveryFailed is returned when the reset notifier rejected
	// the token.
	MsgResetDeliveryFailed = "Password reset link could not be sent"

	// MsgServiceUnavailable is returned when the credential store does not
	// answer.
	MsgServiceUnavailable = "Service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
