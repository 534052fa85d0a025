package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := httptest.NewRecorder()
	h.version(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestHealth(t *testing.T) {
	h, m := newMockedHandler(t)
	m.health.EXPECT().Check(gomock.Any()).Return(nil)

	rr := httptest.NewRecorder()
	h.health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHealth_Unavailable(t *testing.T) {
	h, m := newMockedHandler(t)
	m.health.EXPECT().Check(gomock.Any()).
		Return(fmt.Errorf("%w: %w", service.ErrServiceUnavailable, errors.New("dial tcp: refused")))

	rr := httptest.NewRecorder()
	h.health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotContains(t, rr.Body.String(), "dial tcp")
}
