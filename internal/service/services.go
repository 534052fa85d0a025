// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/token"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices assembles the service layer. The auth service is wrapped with
// input validation.
func NewServices(
	storages *store.Storages,
	resetNotifier ResetNotifier,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	codec, err := token.NewCodec(token.Config{
		SignKey:    cfg.App.TokenSignKey,
		Issuer:     cfg.App.TokenIssuer,
		AccessTTL:  cfg.App.AccessTokenDuration,
		RefreshTTL: cfg.App.RefreshTokenDuration,
		ResetTTL:   cfg.App.ResetTokenDuration,
	}, token.UTCClock{})
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	authService := NewAuthService(
		storages.UserRepository,
		crypto.NewBcryptHasher(cfg.App.PasswordHashCost),
		codec,
		resetNotifier,
		cfg.App,
		logger,
	)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: NewAppInfoService(buildInfo, logger),
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
