// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store. Email lookups are exact and
// case-sensitive; uniqueness of email is enforced by the database.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and timestamps set.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no user matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePassword replaces the stored hash of userID with newHash only
	// while it still equals currentHash. Returns [ErrPasswordChanged] when
	// the hash differs and [ErrUserNotFound] when the user is gone.
	UpdatePassword(ctx context.Context, userID int64, currentHash, newHash string) error
}

// ErrorClassificator inspects driver errors for a particular database.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
