package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/redact"
	"google.golang.org/genai"
)

// Generator implements generation.Generator for one Gemini client.
type Generator struct {
	logger  *slog.Logger
	models  ModelsAPI
	timeout time.Duration
}

// NewGenerator wraps models. A zero timeout leaves the call bounded only by
// the caller's context.
func NewGenerator(logger *slog.Logger, models ModelsAPI, timeout time.Duration) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, models: models, timeout: timeout}
}

// Generate implements generation.Generator. It makes exactly one call.
func (g *Generator) Generate(ctx context.Context, req *generation.Request) (*generation.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", generation.ErrInvalidConfig)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.DebugContext(ctx, "making Gemini API call",
		"capability", req.Capability,
		"model", req.Model,
		"tools", len(req.Tools),
		"prompt_length", len(req.Prompt))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		g.logger.DebugContext(ctx, "Gemini API call error",
			"capability", req.Capability,
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %s", generation.ErrCallFailure, redact.Error(err))
	}

	out, err := normalize(resp)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"capability", req.Capability,
		"parts", len(out.Parts),
		"grounding_chunks", len(out.Grounding),
		"duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

// normalize converts the first candidate of resp into a generation.Response.
func normalize(resp *genai.GenerateContentResponse) (*generation.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrExtractionFailure)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: content blocked by safety filters", generation.ErrExtractionFailure)
	}

	out := &generation.Response{}
	if candidate.Content != nil {
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.Text != "" && !part.Thought {
				text.WriteString(part.Text)
			}
			np := generation.Part{Text: part.Text}
			if part.InlineData != nil {
				np.InlineData = &generation.Blob{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}
			}
			out.Parts = append(out.Parts, np)
		}
		out.Text = text.String()
	}

	if candidate.GroundingMetadata != nil {
		raw, err := json.Marshal(candidate.GroundingMetadata)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode grounding metadata: %v", generation.ErrExtractionFailure, err)
		}
		chunks, err := generation.ParseGroundingChunks(raw)
		if err != nil {
			return nil, err
		}
		out.Grounding = chunks
	}

	return out, nil
}
