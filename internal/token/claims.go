// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload of every token the service issues.
type Claims struct {
	jwt.RegisteredClaims

	// Purpose binds the token to a single operation.
	Purpose models.TokenPurpose `json:"purpose"`

	// PasswordFingerprint is set on password reset tokens only.
	PasswordFingerprint string `json:"pwf,omitempty"`
}
