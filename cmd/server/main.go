package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/handler"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/server"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("recipe-server").Fatal().Err(err).Msg("error getting configs")
	}

	// a version stamped at build time wins over the configured one
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("recipe-server", cfg.App.LogLevel)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
