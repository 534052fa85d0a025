package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// notFound answers unknown routes and unsupported methods with the same JSON
// 404, so a wrong method does not reveal that a route exists.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
