// Package main implements the entry point for the contacts API server,
// which provides user account management and a per-user contacts resource
// backed by MongoDB.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"contacts-api/internal/config"
	"contacts-api/internal/platform/logger"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}
