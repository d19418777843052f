package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"contacts-api/internal/config"
	"contacts-api/internal/metrics"
	"contacts-api/internal/platform/mongodb"
	"contacts-api/internal/service/auth"
	"contacts-api/internal/service/avatar"
	"contacts-api/internal/service/mail"
	"contacts-api/internal/store"
)

// application holds all initialized dependencies. Handlers and middleware
// receive what they need from here at router-construction time; nothing
// reaches for globals.
type application struct {
	config *config.Config
	logger *slog.Logger

	db           *mongodb.Store
	userStore    store.UserStore
	contactStore store.ContactStore

	jwtService   auth.JWTService
	passwords    *auth.BcryptHasher
	verification *mail.VerificationSender
	avatars      *avatar.Store

	registry  *prometheus.Registry
	collector *metrics.Collector
}

// newApplication wires up every component from the loaded configuration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := mongodb.NewStore(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("no SMTP host configured, outgoing email will be logged only")
		mailer = mail.NewLogMailer(logger)
	}

	avatars, err := avatar.NewStore(cfg.Avatars.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize avatar store: %w", err)
	}

	registry := prometheus.NewRegistry()

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		userStore:    db.Users(),
		contactStore: db.Contacts(),
		jwtService:   jwtService,
		passwords:    auth.NewBcryptHasher(),
		verification: mail.NewVerificationSender(mailer, cfg.Server.BaseURL),
		avatars:      avatars,
		registry:     registry,
		collector:    metrics.NewCollector(registry),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
