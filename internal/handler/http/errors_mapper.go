package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: wrapped sentinels precede the ones they wrap.
var errorResponses = []errorResponse{
	{service.ErrEmailAlreadyRegistered, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, app.MsgInvalidRefreshToken},
	{service.ErrInvalidResetToken, http.StatusUnauthorized, app.MsgInvalidResetToken},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgTokenInvalid},
	{service.ErrEmailNotFound, http.StatusNotFound, app.MsgEmailNotFound},
	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrResetDeliveryFailed, http.StatusBadGateway, app.MsgResetDeliveryFailed},
	{service.ErrServiceUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// responseFromError picks the status code and client-facing message for err.
// Unknown errors become a generic 500 so store or driver details never leak.
func responseFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
