package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/trendpulse/internal/api"
	apiMiddleware "github.com/phrazzld/trendpulse/internal/api/middleware"
	"github.com/phrazzld/trendpulse/internal/api/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(
		apiMiddleware.NewTraceMiddleware(app.logger),
	) // Add trace IDs for improved error handling
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: app.corsMethods(),
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{api.ModeHeader, shared.TraceIDHeader},
		MaxAge:         300,
	}))

	contentHandler := api.NewContentHandler(
		app.contentService,
		app.logger,
		app.config.Content.RejectsEmptyInput(),
	)
	credentialHandler := api.NewCredentialHandler(app.contentService, app.credentials, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Content endpoints
		r.Get("/trends", contentHandler.GetTrends)
		r.Post("/plans", contentHandler.CreatePlan)
		r.Post("/thumbnails", contentHandler.CreateThumbnail)

		// Credential endpoints
		r.Get("/credentials", credentialHandler.GetStatus)
		if app.config.Server.CredentialAPIEnabled {
			r.Put("/credentials", credentialHandler.Select)
			r.Delete("/credentials", credentialHandler.Clear)
		}
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}

// corsMethods lists the methods browsers may use cross-origin. Credential
// mutation is only offered to explicitly listed origins.
func (app *application) corsMethods() []string {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	if app.config.Server.CredentialAPIEnabled && !app.config.Server.AllowsAnyOrigin() {
		methods = append(methods, http.MethodPut, http.MethodDelete)
	}
	return methods
}
