// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	first := "John"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		Email:        "john@example.com",
		PasswordHash: "hash",
		FirstName:    &first,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres",
			builder: dollarBuilder,
			want: "INSERT INTO users (email,password_hash,first_name,last_name,phone,created_at,updated_at) " +
				"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id",
		},
		{
			name:    "sqlite",
			builder: questionBuilder,
			want: "INSERT INTO users (email,password_hash,first_name,last_name,phone,created_at,updated_at) " +
				"VALUES (?,?,?,?,?,?,?) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUserQuery(tt.builder, user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			require.Len(t, args, 7)
			assert.Equal(t, "john@example.com", args[0])
			assert.Equal(t, "hash", args[1])
			assert.Equal(t, &first, args[2])
			assert.Nil(t, args[3])
			assert.Equal(t, now, args[5])
		})
	}
}

func Test_buildSelectUserQuery(t *testing.T) {
	const columns = "id, email, password_hash, first_name, last_name, phone, created_at, updated_at"

	tests := []struct {
		name     string
		builder  sq.StatementBuilderType
		where    sq.Eq
		want     string
		wantArgs []any
	}{
		{
			name:     "by email postgres",
			builder:  dollarBuilder,
			where:    sq.Eq{"email": "a@b.c"},
			want:     "SELECT " + columns + " FROM users WHERE email = $1 LIMIT 1",
			wantArgs: []any{"a@b.c"},
		},
		{
			name:     "by id sqlite",
			builder:  questionBuilder,
			where:    sq.Eq{"id": int64(7)},
			want:     "SELECT " + columns + " FROM users WHERE id = ? LIMIT 1",
			wantArgs: []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.builder, tt.where)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdatePasswordQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpdatePasswordQuery(dollarBuilder, 9, "old-hash", "new-hash", now)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3 AND password_hash = $4", query)
	assert.Equal(t, []any{"new-hash", now, int64(9), "old-hash"}, args)
}
