package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/server"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("go-auth-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// the sign key and DSN are secrets: only non-sensitive settings are logged
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns every resource opened after configuration, so its deferred
// cleanup always runs before main exits.
func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	resetNotifier, err := adapter.NewResetNotifier(cfg.Notifier, log)
	if err != nil {
		return fmt.Errorf("error creating reset notifier: %w", err)
	}

	services, err := service.NewServices(storages, resetNotifier, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
