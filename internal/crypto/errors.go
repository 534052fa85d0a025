// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrPasswordTooLong is returned when a password exceeds [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("password is too long")
