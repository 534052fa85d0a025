// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import "time"

// Clock supplies the current instant to the codec. Issuance and expiry checks
// read the same clock.
type Clock interface {
	Now() time.Time
}

// UTCClock is the production [Clock].
type UTCClock struct{}

// Now returns the current wall-clock time in UTC.
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
