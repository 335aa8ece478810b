package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/olekhv/vaultkeep/internal/config"
	myHTTP "github.com/olekhv/vaultkeep/internal/handler/http"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/server"
	"github.com/olekhv/vaultkeep/internal/service"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("vaultkeep-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)
	handler := myHTTP.NewHandler(services, log)

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
