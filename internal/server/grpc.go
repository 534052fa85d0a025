package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-auth-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"

	"google.golang.org/grpc"
)

// healthRefreshInterval is how often the store is pinged to refresh the
// reported gRPC serving status.
const healthRefreshInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	stopHealthRefresh context.CancelFunc
	healthCtx    context.Context

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errListenGRPC, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	healthCtx, stopHealthRefresh := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		stopHealthRefresh:     stopHealthRefresh,
		healthCtx:        healthCtx,
		logger:          logger,
	}, nil
}

// serve blocks until the server stops. GracefulStop makes it return nil.
func (g *grpcServer) serve() error {
	go g.refreshHealth(g.healthCtx)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopHealthRefresh()
	g.handler.Shutdown()
	g.server.GracefulStop()
}

func (g *grpcServer) refreshHealth(ctx context.Context) {
	ticker := time.NewTicker(healthRefreshInterval)
	defer ticker.Stop()

	for {
		status := g.handler.RefreshHealth(ctx)
		g.logger.Debug().Str("status", status.String()).Msg("gRPC health refreshed")

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
