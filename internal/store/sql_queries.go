// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// userColumns is the column order every SELECT scans in [scanUser].
var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"phone",
	"created_at",
	"updated_at",
}

var usersTable = models.User{}.TableName()

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "first_name", "last_name", "phone", "created_at", "updated_at").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildUpdatePasswordQuery only matches while the stored hash is still
// currentHash, so two writers holding the same hash cannot both succeed.
func buildUpdatePasswordQuery(b sq.StatementBuilderType, userID int64, currentHash, newHash string, updatedAt time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", newHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": userID}).
		Where(sq.Eq{"password_hash": currentHash}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
