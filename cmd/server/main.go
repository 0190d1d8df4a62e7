package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/handler"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/server"
	"github.com/MKhiriev/go-contacts-book/internal/service"
	"github.com/MKhiriev/go-contacts-book/internal/store"
	"github.com/MKhiriev/go-contacts-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("contacts-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.MigrateOnStart() {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
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

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
}
