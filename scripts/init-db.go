package main

import (
	"context"
	"flag"
	"fmt"

	"pos_terminal/internal/config"
	"pos_terminal/internal/database"
	"pos_terminal/internal/migrations"

	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "drop every table before migrating")
	flag.Parse()

	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, cfg.GormLogLevel, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(context.Background(), db, *reset, logger); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	fmt.Println("Database initialization completed successfully!")
}
