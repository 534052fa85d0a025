// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the persisted identity record.
//
// PasswordHash always holds the output of the password hasher and is never
// serialized; use [User.Profile] for anything that leaves the service.
type User struct {
	// ID is the store-assigned unique identifier.
	ID int64 `json:"id"`

	// Email is unique across all users and compared case-sensitively,
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	// Optional profile fields. Nil means "not provided".
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// Profile returns the sanitized, client-facing view of the user.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// UserProfile is the public representation of a [User]. It never carries the
// password hash.
type UserProfile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
