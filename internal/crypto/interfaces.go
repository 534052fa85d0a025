// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// Hash is non-deterministic: hashing the same password twice yields two
// different strings, both of which Verify accepts.
type PasswordHasher interface {
	// Hash returns an encoded hash of plaintext that embeds its own salt and
	// cost. Fails with [ErrPasswordTooLong] for inputs the algorithm cannot
	// represent.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash is
	// treated as a mismatch.
	Verify(plaintext, hash string) bool
}
