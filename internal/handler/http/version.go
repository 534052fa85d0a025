package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// version answers with the plain-text build version.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	buildVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(buildVersion)); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
