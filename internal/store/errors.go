// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// constraint on users.email, including when two registrations race.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup or update matches no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordChanged is returned by UpdatePassword when the user exists
	// but its stored hash no longer matches the expected current hash.
	ErrPasswordChanged = errors.New("password changed since it was read")

	// ErrUnsupportedDriver is returned by [NewConnect] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")
)
