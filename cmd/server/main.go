package main

import (
	"context"
	"fmt"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/handler"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/server"
	"github.com/dinehall/dinehall/internal/service"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootstrapLog := logger.NewLogger("dinehall-server", false)
		bootstrapLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("dinehall-server", cfg.App.Debug)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	if cfg.App.SeedDemoData {
		if err = db.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handlers := handler.NewHandler(services, cfg.App, db, log)

	workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)

	srv := server.NewServer(handlers.Init(), cfg.Server, log)
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
