package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/redact"
	"google.golang.org/genai"
)

// ModelsAPI is the subset of the genai models service used by Generator.
// *genai.Models satisfies it.
type ModelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a models API bound to apiKey.
type ClientFactory func(ctx context.Context, apiKey string) (ModelsAPI, error)

// NewGenAIClient is the ClientFactory backed by the real Gemini API.
func NewGenAIClient(ctx context.Context, apiKey string) (ModelsAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// Source hands out a Generator for the currently selected credential.
// The client is created on first use and cached until the key changes.
type Source struct {
	logger  *slog.Logger
	keys    credential.KeyProvider
	factory ClientFactory
	timeout time.Duration

	mu        sync.Mutex
	cachedKey string
	cached    *Generator
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithClientFactory replaces the genai client constructor, typically with a
// fake in tests.
func WithClientFactory(f ClientFactory) SourceOption {
	return func(s *Source) {
		s.factory = f
	}
}

// NewSource creates a Source reading keys from keys.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration; only the request timeout is used here
//   - keys: The provider of the currently selected API key
//
// Returns:
//   - A Source or an error if a required dependency is missing
func NewSource(
	logger *slog.Logger,
	cfg config.LLMConfig,
	keys credential.KeyProvider,
	opts ...SourceOption,
) (*Source, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: key provider cannot be nil", generation.ErrInvalidConfig)
	}

	s := &Source{
		logger:  logger.With("component", "gemini"),
		keys:    keys,
		factory: NewGenAIClient,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generator implements generation.GeneratorSource. It returns
// generation.ErrCredentialAbsent when no key is selected.
func (s *Source) Generator(ctx context.Context) (generation.Generator, error) {
	key := s.keys.APIKey()
	if key == "" {
		return nil, generation.ErrCredentialAbsent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cachedKey == key {
		return s.cached, nil
	}

	models, err := s.factory(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create Gemini client", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s", generation.ErrCallFailure, redact.Error(err))
	}

	if s.cached != nil {
		s.logger.InfoContext(ctx, "credential changed, replacing Gemini client")
	} else {
		s.logger.DebugContext(ctx, "created Gemini client")
	}

	s.cached = NewGenerator(s.logger, models, s.timeout)
	s.cachedKey = key
	return s.cached, nil
}
