package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgHealthy, http.StatusOK)
}
