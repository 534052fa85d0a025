package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// decodeBody reads the JSON body into dst. A missing body leaves dst zeroed
// so the validators report which fields are required.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return true
	}

	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if !decodeBody(w, r, &request) {
		return
	}

	if err := h.services.AuthService.Register(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if !decodeBody(w, r, &request) {
		return
	}

	response, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", response.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if !decodeBody(w, r, &request) {
		return
	}

	response, err := h.services.AuthService.RefreshAccessToken(r.Context(), request.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) passwordResetRequest(w http.ResponseWriter, r *http.Request) {
	var request models.PasswordResetRequest
	if !decodeBody(w, r, &request) {
		return
	}

	ticket, err := h.services.AuthService.RequestPasswordReset(r.Context(), request.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ticket, http.StatusOK)
}

func (h *Handler) passwordReset(w http.ResponseWriter, r *http.Request) {
	var request models.PasswordReset
	if !decodeBody(w, r, &request) {
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}
