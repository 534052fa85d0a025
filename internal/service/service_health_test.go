package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthService_Check(t *testing.T) {
	assert.NoError(t, NewHealthService(stubPinger{}, logger.Nop()).Check(context.Background()))

	pingErr := errors.New("connection refused")
	err := NewHealthService(stubPinger{err: pingErr}, logger.Nop()).Check(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, pingErr)
}
