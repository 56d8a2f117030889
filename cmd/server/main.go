// Package main implements the entry point for the TrendPulse API server,
// which discovers trending keywords, drafts short-video content plans and
// renders thumbnails, degrading to demo or fallback content when the
// generation backend is unavailable.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
)

// main is the entry point for the trendpulse server.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, slog.Default())
	if err != nil {
		slog.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"empty_input_policy", cfg.Content.EmptyInputPolicy)

	// The key itself is never logged
	slog.Debug("LLM configuration",
		"api_key_present", cfg.LLM.GeminiAPIKey != "",
		"trends_model", cfg.LLM.TrendsModel,
		"plan_model", cfg.LLM.PlanModel,
		"image_model", cfg.LLM.ImageModel)

	return cfg, nil
}
