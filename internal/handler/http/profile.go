package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request, user models.User) {
	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}
