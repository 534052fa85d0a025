package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error carries its own message",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be at least 8 characters long",
		},
		{
			name:        "invalid data without detail",
			err:         service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid data provided",
		},
		{name: "duplicate email", err: service.ErrEmailAlreadyRegistered, wantStatus: http.StatusConflict, wantMessage: "Email already registered"},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "bad refresh token", err: service.ErrInvalidRefreshToken, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid refresh token"},
		{name: "bad reset token", err: service.ErrInvalidResetToken, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid or expired reset token"},
		{name: "bad access token", err: service.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantMessage: "Token is invalid"},
		{name: "unknown email", err: service.ErrEmailNotFound, wantStatus: http.StatusNotFound, wantMessage: "Email not found"},
		{name: "unknown user", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMessage: "User not found"},
		{name: "delivery failure", err: fmt.Errorf("%w: %w", service.ErrResetDeliveryFailed, errors.New("timeout")), wantStatus: http.StatusBadGateway, wantMessage: "Password reset link could not be sent"},
		{name: "unavailable", err: service.ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantMessage: "Service unavailable"},
		{
			name:        "store errors never leak",
			err:         fmt.Errorf("user search failed: %w: pq: relation users does not exist", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
