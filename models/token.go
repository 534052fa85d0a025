// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenPurpose tags a token with the single operation it may be used for.
// A token is only ever accepted at call sites expecting its own purpose.
type TokenPurpose string

const (
	// PurposeAccess authorizes calls to protected endpoints.
	PurposeAccess TokenPurpose = "access"

	// PurposeRefresh is used solely to mint new access tokens.
	PurposeRefresh TokenPurpose = "refresh"

	// PurposePasswordReset authorizes exactly one password change.
	PurposePasswordReset TokenPurpose = "password_reset"
)

// Valid reports whether p is one of the known purposes.
func (p TokenPurpose) Valid() bool {
	switch p {
	case PurposeAccess, PurposeRefresh, PurposePasswordReset:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (p TokenPurpose) String() string {
	return string(p)
}

// Token is the decoded (or freshly issued) form of a signed token.
// Tokens are stateless: nothing here is persisted.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// ID is the unique token identifier ("jti").
	ID string `json:"-"`

	// UserID is the subject the token was issued for.
	UserID int64 `json:"-"`

	// Purpose is the operation the token is bound to.
	Purpose TokenPurpose `json:"-"`

	// PasswordFingerprint binds a reset token to the password hash that was
	// current when it was issued. Empty for other purposes.
	PasswordFingerprint string `json:"-"`

	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact signed token.
func (t Token) String() string {
	return t.SignedString
}
