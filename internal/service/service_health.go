// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Pinger is satisfied by the credential store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

// Check returns [ErrServiceUnavailable] when the store cannot be reached.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return nil
}
