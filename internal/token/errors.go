// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
)

var (
	// ErrToken is the parent of every token failure.
	ErrToken = errors.New("token error")

	// ErrTokenInvalid covers malformed tokens, bad signatures, unexpected
	// algorithms, a foreign issuer, missing claims and purpose mismatches.
	ErrTokenInvalid = fmt.Errorf("%w: invalid token", ErrToken)

	// ErrTokenExpired is returned once the current time reaches "exp".
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrToken)

	// ErrInvalidCodecConfig is returned by [NewCodec].
	ErrInvalidCodecConfig = errors.New("invalid token codec configuration")
)
