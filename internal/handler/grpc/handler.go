// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health checking protocol for the
// auth service. The reported status follows the credential store: SERVING
// only while the store answers pings.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-check service name of the auth service. The
// empty name reports the same status for the server as a whole.
const ServiceName = "goauthkeeper.AuthService"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both health entries start as
// NOT_SERVING until the first [Handler.RefreshHealth].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// RefreshHealth checks the service layer and publishes the result.
func (h *Handler) RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", servingStatus)
	h.health.SetServingStatus(ServiceName, servingStatus)

	return servingStatus
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a trace-scoped logger to the context and
// writes one log entry per call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
