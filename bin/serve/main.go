package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"brand-showcase/cmd"
	"brand-showcase/pkg/config"
	"brand-showcase/pkg/logging"
	"brand-showcase/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.Must(cfg.Environment, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// Initialize services
	if err := services.InitService(cfg, logger); err != nil {
		logger.Fatal("Failed to initialise services", zap.Error(err))
	}

	// Start server
	if err := cmd.ServeWebsite(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
