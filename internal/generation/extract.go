package generation

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/trendpulse/internal/domain"
)

// defaultImageMIMEType is used when an inline image part has no MIME type.
const defaultImageMIMEType = "image/png"

var validate = validator.New()

// trendSchema is one element of the trends response body
type trendSchema struct {
	Keyword  string   `json:"keyword"  validate:"required"`
	Category string   `json:"category" validate:"required"`
	Volume   string   `json:"volume"   validate:"required"`
	Growth   *float64 `json:"growth"   validate:"required"`
}

// planSchema is the content plan response body
type planSchema struct {
	Title        string   `json:"title"        validate:"required"`
	Hook         string   `json:"hook"         validate:"required"`
	Body         string   `json:"body"         validate:"required"`
	Platforms    []string `json:"platforms"`
	Hashtags     []string `json:"hashtags"`
	VisualPrompt string   `json:"visualPrompt" validate:"required"`
}

func responseText(resp *Response) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrExtractionFailure)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response body", ErrExtractionFailure)
	}
	return text, nil
}

// DecodeTrends decodes a trends response body. At most limit items are
// returned; limit <= 0 means no limit. An empty list is an extraction failure.
func DecodeTrends(resp *Response, limit int) ([]domain.TrendItem, error) {
	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var items []trendSchema
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrExtractionFailure, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no trends in response", ErrExtractionFailure)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	trends := make([]domain.TrendItem, 0, len(items))
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("%w: trend %d: %v", ErrExtractionFailure, i, err)
		}
		trends = append(trends, domain.TrendItem{
			Keyword:  strings.TrimSpace(item.Keyword),
			Category: strings.TrimSpace(item.Category),
			Volume:   strings.TrimSpace(item.Volume),
			Growth:   *item.Growth,
		})
	}
	return trends, nil
}

// DecodePlan decodes a plan response body and attaches the sources and
// places found in its grounding chunks. A nil sanitizer only trims text.
func DecodePlan(resp *Response, sanitizer Sanitizer) (domain.ContentPlan, error) {
	text, err := responseText(resp)
	if err != nil {
		return domain.ContentPlan{}, err
	}
	if sanitizer == nil {
		sanitizer = PlainText{}
	}

	var body planSchema
	if err := json.Unmarshal([]byte(text), &body); err != nil {
		return domain.ContentPlan{}, fmt.Errorf("%w: failed to parse JSON response: %v", ErrExtractionFailure, err)
	}
	if err := validate.Struct(body); err != nil {
		return domain.ContentPlan{}, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}

	sources, places := PartitionGrounding(resp.Grounding)
	plan := domain.ContentPlan{
		Title:        sanitizer.Sanitize(body.Title),
		Hook:         sanitizer.Sanitize(body.Hook),
		Body:         sanitizer.Sanitize(body.Body),
		Platforms:    sanitizeList(sanitizer, body.Platforms),
		Hashtags:     sanitizeList(sanitizer, body.Hashtags),
		VisualPrompt: sanitizer.Sanitize(body.VisualPrompt),
		Sources:      sources,
		Places:       places,
	}

	if !plan.Complete() {
		return domain.ContentPlan{}, fmt.Errorf("%w: plan is missing required text", ErrExtractionFailure)
	}
	return plan, nil
}

func sanitizeList(sanitizer Sanitizer, in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if clean := sanitizer.Sanitize(s); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// ExtractImage returns the first inline image part as a data URI.
func ExtractImage(resp *Response) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrExtractionFailure)
	}

	for _, part := range resp.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = defaultImageMIMEType
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
	}

	return "", fmt.Errorf("%w: no image generated", ErrExtractionFailure)
}
