package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/metrics"
	"github.com/phrazzld/trendpulse/internal/platform/gemini"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	registry *prometheus.Registry

	// Credential state shared by the content service and the credential API
	credentials *credential.Store

	// Service interfaces
	contentService content.Service
}

// appOption customizes application construction.
type appOption func(*appDeps)

type appDeps struct {
	clientFactory gemini.ClientFactory
}

// withClientFactory replaces the genai client constructor.
func withClientFactory(f gemini.ClientFactory) appOption {
	return func(d *appDeps) {
		d.clientFactory = f
	}
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...appOption) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	deps := appDeps{}
	for _, opt := range opts {
		opt(&deps)
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	// Initialize the credential store from the configured key, if any
	app.credentials = credential.NewStore(cfg.LLM.GeminiAPIKey)
	if !app.credentials.Available(context.Background()) {
		logger.Warn("No Gemini API key configured, content will be served in demo mode")
	}
	if cfg.Server.CredentialAPIEnabled && cfg.Server.AllowsAnyOrigin() {
		logger.Warn("Credential API enabled with wildcard CORS origins, cross-origin credential changes are refused")
	}

	var sourceOpts []gemini.SourceOption
	if deps.clientFactory != nil {
		sourceOpts = append(sourceOpts, gemini.WithClientFactory(deps.clientFactory))
	}
	source, err := gemini.NewSource(logger, cfg.LLM, app.credentials, sourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator source: %w", err)
	}

	builder, err := generation.NewBuilder(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize request builder: %w", err)
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheus(app.registry)

	app.contentService, err = content.NewService(
		cfg.Content,
		app.credentials,
		source,
		builder,
		logger,
		content.WithRecorder(recorder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
