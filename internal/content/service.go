package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/metrics"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
	"github.com/phrazzld/trendpulse/internal/redact"
	"golang.org/x/text/unicode/norm"
)

// Operation names used in logs and metrics
const (
	OperationTrends    = "trends"
	OperationPlan      = "plan"
	OperationThumbnail = "thumbnail"
)

// TrendsResult is the outcome of FetchTrends. Trends is never empty.
type TrendsResult struct {
	Trends []domain.TrendItem `json:"trends"`
	Mode   domain.Mode        `json:"mode"`
	Err    error              `json:"-"`
}

// PlanResult is the outcome of GeneratePlan. Plan is always complete.
type PlanResult struct {
	Plan domain.ContentPlan `json:"plan"`
	Mode domain.Mode        `json:"mode"`
	Err  error              `json:"-"`
}

// ThumbnailResult is the outcome of GenerateThumbnail. ImageURI is either a
// data URI of the generated image or PlaceholderImage.
type ThumbnailResult struct {
	ImageURI string      `json:"image_uri"`
	Mode     domain.Mode `json:"mode"`
	Err      error       `json:"-"`
}

// CredentialStatus reports whether live generation is possible.
type CredentialStatus struct {
	Available bool `json:"available"`
}

// Service provides the content operations. None of the operations fail:
// degraded results are tagged with their mode instead.
type Service interface {
	// FetchTrends returns region-specific trending keywords
	FetchTrends(ctx context.Context) TrendsResult

	// GeneratePlan returns a content plan for keyword. Place search is used
	// only when loc is non-nil.
	GeneratePlan(ctx context.Context, keyword string, loc *domain.LatLng) PlanResult

	// GenerateThumbnail returns an image for prompt at the given size
	GenerateThumbnail(ctx context.Context, prompt string, size domain.ImageSize) ThumbnailResult

	// CredentialStatus reports whether a credential is currently selected
	CredentialStatus(ctx context.Context) CredentialStatus
}

// ServiceError wraps errors from service construction with context.
type ServiceError struct {
	// Operation is the operation that failed
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("content service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Option configures the service.
type Option func(*serviceImpl)

// WithRecorder records every operation outcome with r.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *serviceImpl) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithSanitizer replaces the text sanitizer applied to generated plans.
func WithSanitizer(san generation.Sanitizer) Option {
	return func(s *serviceImpl) {
		if san != nil {
			s.sanitizer = san
		}
	}
}

// WithClock replaces time.Now, for deterministic durations in tests.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type serviceImpl struct {
	logger      *slog.Logger
	creds       credential.Provider
	source      generation.GeneratorSource
	builder     *generation.Builder
	sanitizer   generation.Sanitizer
	recorder    metrics.Recorder
	now         func() time.Time
	trendCount  int
	rejectEmpty bool
}

// NewService creates a Service.
// It returns an error if any of the required dependencies are nil.
func NewService(
	cfg config.ContentConfig,
	creds credential.Provider,
	source generation.GeneratorSource,
	builder *generation.Builder,
	log *slog.Logger,
	opts ...Option,
) (Service, error) {
	switch {
	case creds == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "credential provider cannot be nil"}
	case source == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "generator source cannot be nil"}
	case builder == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "request builder cannot be nil"}
	case log == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	trendCount := cfg.TrendCount
	if trendCount <= 0 {
		trendCount = len(mockTrends)
	}

	var sanitizer generation.Sanitizer = generation.PlainText{}
	if cfg.SanitizeHTML {
		sanitizer = generation.NewMarkupStripper()
	}

	s := &serviceImpl{
		logger:      log.With(slog.String("component", "content_service")),
		creds:       creds,
		source:      source,
		builder:     builder,
		sanitizer:   sanitizer,
		recorder:    metrics.Nop{},
		now:         time.Now,
		trendCount:  trendCount,
		rejectEmpty: cfg.RejectsEmptyInput(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CredentialStatus implements Service.
func (s *serviceImpl) CredentialStatus(ctx context.Context) CredentialStatus {
	return CredentialStatus{Available: s.creds.Available(ctx)}
}

// FetchTrends implements Service.
func (s *serviceImpl) FetchTrends(ctx context.Context) TrendsResult {
	start := s.now()
	log := s.operationLogger(ctx, OperationTrends)

	trends, err := s.fetchTrends(ctx)

	result := TrendsResult{Trends: trends, Mode: domain.ModeLive}
	if err != nil {
		result = TrendsResult{Trends: MockTrends(), Mode: s.degrade(ctx, log, err), Err: err}
	}

	s.record(OperationTrends, result.Mode, start)
	return result
}

func (s *serviceImpl) fetchTrends(ctx context.Context) ([]domain.TrendItem, error) {
	gen, err := s.generator(ctx)
	if err != nil {
		return nil, err
	}
	req, err := s.builder.TrendsRequest(s.trendCount)
	if err != nil {
		return nil, err
	}
	resp, err := gen.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return generation.DecodeTrends(resp, s.trendCount)
}

// GeneratePlan implements Service.
func (s *serviceImpl) GeneratePlan(ctx context.Context, keyword string, loc *domain.LatLng) PlanResult {
	start := s.now()
	log := s.operationLogger(ctx, OperationPlan).With("has_location", loc != nil)

	keyword = normalizeInput(keyword)
	plan, err := s.generatePlan(ctx, keyword, loc)

	result := PlanResult{Plan: plan, Mode: domain.ModeLive}
	if err != nil {
		mode := s.degrade(ctx, log, err)
		result = PlanResult{Plan: degradedPlan(keyword, mode), Mode: mode, Err: err}
	}

	s.record(OperationPlan, result.Mode, start)
	return result
}

func (s *serviceImpl) generatePlan(ctx context.Context, keyword string, loc *domain.LatLng) (domain.ContentPlan, error) {
	if err := s.checkInput("keyword", keyword); err != nil {
		return domain.ContentPlan{}, err
	}
	if loc != nil {
		if err := loc.Validate(); err != nil {
			return domain.ContentPlan{}, err
		}
	}

	gen, err := s.generator(ctx)
	if err != nil {
		return domain.ContentPlan{}, err
	}
	req, err := s.builder.PlanRequest(keyword, loc)
	if err != nil {
		return domain.ContentPlan{}, err
	}
	resp, err := gen.Generate(ctx, req)
	if err != nil {
		return domain.ContentPlan{}, err
	}
	return generation.DecodePlan(resp, s.sanitizer)
}

// GenerateThumbnail implements Service.
func (s *serviceImpl) GenerateThumbnail(ctx context.Context, prompt string, size domain.ImageSize) ThumbnailResult {
	start := s.now()
	log := s.operationLogger(ctx, OperationThumbnail).With("size", string(size))

	uri, err := s.generateThumbnail(ctx, normalizeInput(prompt), size)

	result := ThumbnailResult{ImageURI: uri, Mode: domain.ModeLive}
	if err != nil {
		result = ThumbnailResult{ImageURI: PlaceholderImage, Mode: s.degrade(ctx, log, err), Err: err}
	}

	s.record(OperationThumbnail, result.Mode, start)
	return result
}

func (s *serviceImpl) generateThumbnail(ctx context.Context, prompt string, size domain.ImageSize) (string, error) {
	if err := s.checkInput("prompt", prompt); err != nil {
		return "", err
	}

	gen, err := s.generator(ctx)
	if err != nil {
		return "", err
	}
	req, err := s.builder.ThumbnailRequest(prompt, size)
	if err != nil {
		return "", err
	}
	resp, err := gen.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return generation.ExtractImage(resp)
}

// generator returns a live generator or ErrCredentialAbsent. The credential
// check comes first so no client is created without one.
func (s *serviceImpl) generator(ctx context.Context) (generation.Generator, error) {
	if !s.creds.Available(ctx) {
		return nil, generation.ErrCredentialAbsent
	}
	gen, err := s.source.Generator(ctx)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, generation.ErrCredentialAbsent
	}
	return gen, nil
}

func (s *serviceImpl) checkInput(field, value string) error {
	if value == "" && s.rejectEmpty {
		return fmt.Errorf("%w: %s", generation.ErrEmptyInput, field)
	}
	return nil
}

// degrade logs err at the level its cause deserves and returns the mode of
// the degraded result.
func (s *serviceImpl) degrade(ctx context.Context, log *slog.Logger, err error) domain.Mode {
	switch {
	case errors.Is(err, generation.ErrCredentialAbsent):
		log.InfoContext(ctx, "no credential configured, returning demo data")
		return domain.ModeDemo
	case errors.Is(err, generation.ErrEmptyInput), errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidImageSize):
		log.WarnContext(ctx, "rejected invalid input, returning fallback data", "error", redact.Error(err))
		return domain.ModeFallback
	default:
		log.ErrorContext(ctx, "content generation failed, returning fallback data", "error", redact.Error(err))
		return domain.ModeFallback
	}
}

func (s *serviceImpl) operationLogger(ctx context.Context, operation string) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger).With("operation", operation)
}

func (s *serviceImpl) record(operation string, mode domain.Mode, start time.Time) {
	s.recorder.RecordOperation(operation, string(mode), s.now().Sub(start))
}

// normalizeInput trims and NFC-normalizes user text so composed and
// decomposed Hangul produce the same prompt.
func normalizeInput(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
