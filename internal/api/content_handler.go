package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/trendpulse/internal/api/shared"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
)

// ModeHeader carries the result mode on content responses.
const ModeHeader = "X-Content-Mode"

// ContentHandler handles trend, plan and thumbnail requests
type ContentHandler struct {
	service     content.Service
	logger      *slog.Logger
	rejectEmpty bool
}

// NewContentHandler creates a new ContentHandler. When rejectEmpty is set,
// requests with an empty keyword or prompt are answered with 400.
func NewContentHandler(service content.Service, logger *slog.Logger, rejectEmpty bool) *ContentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContentHandler")
	}

	return &ContentHandler{
		service:     service,
		logger:      logger.With(slog.String("component", "content_handler")),
		rejectEmpty: rejectEmpty,
	}
}

// GetTrends handles GET /api/trends requests
func (h *ContentHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	result := h.service.FetchTrends(r.Context())
	h.respond(w, r, result.Mode, result)
}

// CreatePlan handles POST /api/plans requests
func (h *ContentHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if h.rejectEmpty && strings.TrimSpace(req.Keyword) == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Keyword cannot be empty", generation.ErrEmptyInput)
		return
	}

	result := h.service.GeneratePlan(r.Context(), req.Keyword, req.Location.LatLng())
	h.respond(w, r, result.Mode, result)
}

// CreateThumbnail handles POST /api/thumbnails requests
func (h *ContentHandler) CreateThumbnail(w http.ResponseWriter, r *http.Request) {
	var req ThumbnailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	size, err := domain.ParseImageSize(req.Size)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if h.rejectEmpty && strings.TrimSpace(req.Prompt) == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Prompt cannot be empty", generation.ErrEmptyInput)
		return
	}

	result := h.service.GenerateThumbnail(r.Context(), req.Prompt, size)
	h.respond(w, r, result.Mode, result)
}

func (h *ContentHandler) respond(w http.ResponseWriter, r *http.Request, mode domain.Mode, body interface{}) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if mode.Degraded() {
		log.Debug("serving degraded content", slog.String("mode", string(mode)), slog.String("path", r.URL.Path))
	}
	w.Header().Set(ModeHeader, string(mode))
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// decodeAndValidate reads and validates the body into v, answering 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		status := MapErrorToStatusCode(err)
		msg := GetSafeErrorMessage(err)
		if status == http.StatusInternalServerError {
			status, msg = http.StatusBadRequest, "Invalid request format"
		}
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
