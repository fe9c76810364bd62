package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/farm-ledger/internal/config"
	handlerHTTP "github.com/MKhiriev/farm-ledger/internal/handler/http"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/server"
	"github.com/MKhiriev/farm-ledger/internal/service"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("farm-ledger-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	blobStore, err := store.NewS3BlobStore(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	storages := store.NewStorages(db, blobStore, cfg.Storage, log)
	services := service.NewServices(storages, *cfg, log)
	handler := handlerHTTP.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
