package generation

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/domain"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names every template set must define
const (
	trendsPromptTemplate = "trends_prompt.tmpl"
	planSystemTemplate   = "plan_system.tmpl"
	planPromptTemplate   = "plan_prompt.tmpl"
)

// Builder constructs schema-constrained requests for each capability.
type Builder struct {
	templates   *template.Template
	trendsModel string
	planModel   string
	imageModel  string
	aspectRatio string
	region      string
}

type trendsPromptData struct {
	Region string
	Count  int
}

type planPromptData struct {
	Keyword     string
	HasLocation bool
}

// NewBuilder creates a Builder from LLM configuration. Templates come from
// PromptTemplateDir when set, otherwise from the embedded defaults.
func NewBuilder(cfg config.LLMConfig) (*Builder, error) {
	if cfg.TrendsModel == "" || cfg.PlanModel == "" || cfg.ImageModel == "" {
		return nil, fmt.Errorf("%w: model names cannot be empty", ErrInvalidConfig)
	}

	tmpl, err := loadTemplates(cfg.PromptTemplateDir)
	if err != nil {
		return nil, err
	}

	return &Builder{
		templates:   tmpl,
		trendsModel: cfg.TrendsModel,
		planModel:   cfg.PlanModel,
		imageModel:  cfg.ImageModel,
		aspectRatio: cfg.ImageAspectRatio,
		region:      cfg.TrendRegion,
	}, nil
}

func loadTemplates(dir string) (*template.Template, error) {
	var fsys fs.FS
	pattern := "*.tmpl"
	if dir == "" {
		fsys = embeddedTemplates
		pattern = "templates/*.tmpl"
	} else {
		fsys = os.DirFS(dir)
	}

	tmpl, err := template.New("prompts").Option("missingkey=error").ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates: %v", ErrInvalidConfig, err)
	}

	for _, name := range []string{trendsPromptTemplate, planSystemTemplate, planPromptTemplate} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("%w: prompt template %s is missing", ErrInvalidConfig, name)
		}
	}
	return tmpl, nil
}

func (b *Builder) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := b.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// TrendsRequest asks for count region-specific trending keywords with
// estimated volume and growth, grounded on web search.
func (b *Builder) TrendsRequest(count int) (*Request, error) {
	prompt, err := b.render(trendsPromptTemplate, trendsPromptData{Region: b.region, Count: count})
	if err != nil {
		return nil, err
	}

	return &Request{
		Capability: CapabilityTrends,
		Model:      b.trendsModel,
		Prompt:     prompt,
		Schema:     TrendsSchema(),
		Tools:      []Tool{{Kind: ToolWebSearch}},
	}, nil
}

// PlanRequest asks for a short-video content plan for keyword. Place search
// is attached, anchored to loc, only when loc is non-nil.
func (b *Builder) PlanRequest(keyword string, loc *domain.LatLng) (*Request, error) {
	data := planPromptData{Keyword: keyword, HasLocation: loc != nil}

	system, err := b.render(planSystemTemplate, data)
	if err != nil {
		return nil, err
	}
	prompt, err := b.render(planPromptTemplate, data)
	if err != nil {
		return nil, err
	}

	tools := []Tool{{Kind: ToolWebSearch}}
	if loc != nil {
		anchor := *loc
		tools = append(tools, Tool{Kind: ToolPlaceSearch, Location: &anchor})
	}

	return &Request{
		Capability:        CapabilityPlan,
		Model:             b.planModel,
		SystemInstruction: system,
		Prompt:            prompt,
		Schema:            PlanSchema(),
		Tools:             tools,
	}, nil
}

// ThumbnailRequest asks for a single vertical image for prompt.
func (b *Builder) ThumbnailRequest(prompt string, size domain.ImageSize) (*Request, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidImageSize, size)
	}

	return &Request{
		Capability: CapabilityThumbnail,
		Model:      b.imageModel,
		Prompt:     prompt,
		Image: &ImageOptions{
			AspectRatio: b.aspectRatio,
			Size:        size,
		},
	}, nil
}

// TrendsSchema declares an array of trend objects with every field required.
func TrendsSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"keyword":  {Type: TypeString},
				"category": {Type: TypeString},
				"volume":   {Type: TypeString},
				"growth":   {Type: TypeNumber},
			},
			Ordering: []string{"keyword", "category", "volume", "growth"},
			Required: []string{"keyword", "category", "volume", "growth"},
		},
	}
}

// PlanSchema declares the content plan body with every field required.
// Sources and places are not part of the schema; they come from grounding.
func PlanSchema() *Schema {
	fields := []string{"title", "hook", "body", "platforms", "hashtags", "visualPrompt"}
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":        {Type: TypeString, Description: "Catchy title for the content"},
			"hook":         {Type: TypeString, Description: "The first 3 seconds hook script"},
			"body":         {Type: TypeString, Description: "Main content description"},
			"platforms":    {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"hashtags":     {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"visualPrompt": {Type: TypeString, Description: "Prompt for image generation model (in English)"},
		},
		Ordering: fields,
		Required: fields,
	}
}
