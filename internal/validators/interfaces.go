// Package validators checks the shape of account requests before they reach
// the auth service.
//
// Every failure is one of the [ValidationError] sentinels in errors.go. Their
// Message is safe to return to clients as is.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked; otherwise every rule of the value's type applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
