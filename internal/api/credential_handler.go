package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/trendpulse/internal/api/shared"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
)

// CredentialSelector changes the credential used for live generation.
// *credential.Store satisfies it.
type CredentialSelector interface {
	Select(key string) error
	Clear()
}

// CredentialHandler handles credential status and selection requests
type CredentialHandler struct {
	service  content.Service
	selector CredentialSelector
	logger   *slog.Logger
}

// NewCredentialHandler creates a new CredentialHandler
func NewCredentialHandler(service content.Service, selector CredentialSelector, logger *slog.Logger) *CredentialHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CredentialHandler")
	}

	return &CredentialHandler{
		service:  service,
		selector: selector,
		logger:   logger.With(slog.String("component", "credential_handler")),
	}
}

// GetStatus handles GET /api/credentials requests
func (h *CredentialHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.service.CredentialStatus(r.Context()))
}

// Select handles PUT /api/credentials requests
func (h *CredentialHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req CredentialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.selector.Select(req.APIKey); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("credential selected")
	shared.RespondWithJSON(w, r, http.StatusOK, h.service.CredentialStatus(r.Context()))
}

// Clear handles DELETE /api/credentials requests
func (h *CredentialHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.selector.Clear()
	logger.FromContextOrDefault(r.Context(), h.logger).Info("credential cleared")
	shared.RespondWithJSON(w, r, http.StatusOK, h.service.CredentialStatus(r.Context()))
}
