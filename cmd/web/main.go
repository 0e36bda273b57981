package main

import (
	"fmt"
	"os"

	"spendview/internal/api"
	"spendview/internal/config"
	"spendview/internal/handlers"
	"spendview/internal/logger"
	"spendview/internal/session"
	"spendview/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom form validations
	validator.Register()

	// Backend client and session manager
	client := api.NewClient(appConfig.APIBaseURL)
	sessions := session.NewManager(client, appConfig)

	// Page handlers and router
	h := handlers.New(client, sessions)
	router := handlers.Routes(h, sessions)

	log.Infof("Starting spendview on port %s", appConfig.Port)
	log.Infof("Using expense service at %s", appConfig.APIBaseURL)
	return router.Run(":" + appConfig.Port)
}
