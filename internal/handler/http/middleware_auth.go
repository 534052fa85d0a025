package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const bearerScheme = "bearer"

// authorizedHandlerFunc is a handler that receives the caller resolved from
// the access token as an explicit argument.
type authorizedHandlerFunc func(w http.ResponseWriter, r *http.Request, user models.User)

// requireAccessToken resolves the caller from the "Authorization: Bearer"
// header and passes it to next.
//
// Every authorization failure is a 401 with a JSON message: "Token is
// missing" when there is no header, "Token is invalid" otherwise. A store
// outage while resolving the user is a 500.
func (h *Handler) requireAccessToken(next authorizedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgTokenMissing, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, app.MsgTokenInvalid, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.Authorize(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				log.Debug().Err(err).Msg("access token rejected")
				utils.WriteMessage(w, app.MsgTokenInvalid, http.StatusUnauthorized)
				return
			}
			writeError(w, r, err)
			return
		}

		next(w, r, user)
	}
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>". The scheme must be Bearer,
// compared case-insensitively; any whitespace separates the parts.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrUnsupportedAuthorizationScheme
	}

	return parts[1], nil
}
