// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the purpose-tagged, HMAC-SHA256 signed
// JWTs used for access, refresh and password reset.
//
// Tokens are stateless: nothing is persisted. A token is accepted only if
// its signature, issuer, expiry and purpose all check out. The "iat" claim
// is informational and never causes a rejection.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config holds the signing secret, issuer and per-purpose lifetimes.
type Config struct {
	SignKey    string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

// Codec issues and parses tokens. It is safe for concurrent use; all of its
// state is read-only after construction.
type Codec struct {
	signKey []byte
	issuer  string
	ttl     map[models.TokenPurpose]time.Duration
	clock   Clock
	parser  *jwt.Parser
}

// IssueOption customizes a single [Codec.Issue] call.
type IssueOption func(*Claims)

// WithPasswordFingerprint embeds a fingerprint of the user's current password
// hash into the token.
func WithPasswordFingerprint(fingerprint string) IssueOption {
	return func(c *Claims) {
		c.PasswordFingerprint = fingerprint
	}
}

// NewCodec validates cfg and returns a ready [Codec]. A nil clock defaults
// to [UTCClock].
func NewCodec(cfg Config, clock Clock) (*Codec, error) {
	if cfg.SignKey == "" || cfg.Issuer == "" {
		return nil, fmt.Errorf("%w: sign key and issuer are required", ErrInvalidCodecConfig)
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 || cfg.ResetTTL <= 0 {
		return nil, fmt.Errorf("%w: lifetimes must be positive", ErrInvalidCodecConfig)
	}
	if clock == nil {
		clock = UTCClock{}
	}

	return &Codec{
		signKey: []byte(cfg.SignKey),
		issuer:  cfg.Issuer,
		ttl: map[models.TokenPurpose]time.Duration{
			models.PurposeAccess:        cfg.AccessTTL,
			models.PurposeRefresh:       cfg.RefreshTTL,
			models.PurposePasswordReset: cfg.ResetTTL,
		},
		clock: clock,
		// Time-based claims are checked in Parse against the codec clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// Issue signs a new token for userID bound to purpose. The lifetime is taken
// from the codec configuration for that purpose.
func (c *Codec) Issue(userID int64, purpose models.TokenPurpose, opts ...IssueOption) (models.Token, error) {
	if !purpose.Valid() {
		return models.Token{}, fmt.Errorf("%w: unknown purpose %q", ErrTokenInvalid, purpose)
	}
	ttl := c.ttl[purpose]

	now := c.clock.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Purpose: purpose,
	}
	for _, opt := range opts {
		opt(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return tokenFromClaims(signed, userID, claims), nil
}

// Parse verifies tokenString and checks that it was issued for expected.
//
// Failures wrap [ErrTokenExpired] when the current time is at or past "exp"
// and [ErrTokenInvalid] for everything else.
func (c *Codec) Parse(tokenString string, expected models.TokenPurpose) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}
	if !expected.Valid() {
		return models.Token{}, fmt.Errorf("%w: unknown purpose %q", ErrTokenInvalid, expected)
	}

	claims := &Claims{}
	_, err := c.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Issuer != c.issuer {
		return models.Token{}, fmt.Errorf("%w: unexpected issuer %q", ErrTokenInvalid, claims.Issuer)
	}
	if claims.ExpiresAt == nil {
		return models.Token{}, fmt.Errorf("%w: missing exp claim", ErrTokenInvalid)
	}
	if !c.clock.Now().Before(claims.ExpiresAt.Time) {
		return models.Token{}, ErrTokenExpired
	}
	if claims.Purpose != expected {
		return models.Token{}, fmt.Errorf("%w: purpose %q, want %q", ErrTokenInvalid, claims.Purpose, expected)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: bad subject: %w", ErrTokenInvalid, err)
	}

	return tokenFromClaims(tokenString, userID, claims), nil
}

// IsExpired reports whether err is an expiry failure.
func IsExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

func tokenFromClaims(signed string, userID int64, claims *Claims) models.Token {
	t := models.Token{
		SignedString:        signed,
		ID:                  claims.ID,
		UserID:              userID,
		Purpose:             claims.Purpose,
		PasswordFingerprint: claims.PasswordFingerprint,
		ExpiresAt:           claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		t.IssuedAt = claims.IssuedAt.Time
	}
	return t
}
