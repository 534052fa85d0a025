// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic JSON body for informational and error
// responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserProfile `json:"user"`
}

// AccessTokenResponse is returned by a successful refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// PasswordResetTicket is returned by a password reset request.
//
// ResetToken is only filled in when the service runs with reset-token
// exposure enabled, which is refused in production. ResetTokenExposed flags
// such responses explicitly.
type PasswordResetTicket struct {
	Message           string `json:"message"`
	ResetToken        string `json:"reset_token,omitempty"`
	ResetTokenExposed bool   `json:"reset_token_exposed,omitempty"`
}
