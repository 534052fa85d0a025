package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_NotFound(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown route", method: http.MethodGet, path: "/api/nonexistent"},
		{name: "GET on POST route", method: http.MethodGet, path: "/api/auth/login"},
		{name: "DELETE on POST route", method: http.MethodDelete, path: "/api/auth/register"},
		{name: "POST on GET route", method: http.MethodPost, path: "/api/user/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"message":"Not found"}`, rr.Body.String())
		})
	}
}
