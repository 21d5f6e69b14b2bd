package main

import (
	"flag"
	"os"

	"github.com/academia/course-portal/internal/bootstrap"
	"github.com/academia/course-portal/internal/pkg/logger"
	"github.com/academia/course-portal/internal/server"
)

// @title Course Portal API
// @version 1.0
// @description Course enrollment service with student accounts, a course catalog and JWT bearer authentication.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to SQL migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, *migrationsDir)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, database)
	router := bootstrap.SetupRouter(cfg, deps)

	if err := server.New(cfg, router).Run(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
