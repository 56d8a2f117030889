package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Content ContentConfig `mapstructure:"content" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	LogFormat              string   `mapstructure:"log_format"               validate:"required,oneof=json text"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"     validate:"required,min=1,dive,required"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`

	// CredentialAPIEnabled exposes PUT and DELETE /api/credentials. Off by
	// default; cross-origin use additionally requires explicit origins.
	CredentialAPIEnabled bool `mapstructure:"credential_api_enabled"`
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (c ServerConfig) AllowsAnyOrigin() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is optional. Without it the service runs in demo mode.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	TrendsModel      string `mapstructure:"trends_model"       validate:"required"`
	PlanModel        string `mapstructure:"plan_model"         validate:"required"`
	ImageModel       string `mapstructure:"image_model"        validate:"required"`
	ImageAspectRatio string `mapstructure:"image_aspect_ratio" validate:"required"`

	// TrendRegion is the region named in the trend discovery prompt
	TrendRegion string `mapstructure:"trend_region" validate:"required"`

	// RequestTimeoutSeconds bounds a single backend call; 0 disables the bound
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	// PromptTemplateDir overrides the embedded prompt templates when set
	PromptTemplateDir string `mapstructure:"prompt_template_dir" validate:"omitempty,dir"`
}

// Empty input policies
const (
	// EmptyInputForward sends empty keywords and prompts to the backend as-is.
	EmptyInputForward = "forward"
	// EmptyInputReject fails fast on empty keywords and prompts.
	EmptyInputReject = "reject"
)

// ContentConfig contains settings of the content service itself.
type ContentConfig struct {
	TrendCount       int    `mapstructure:"trend_count"        validate:"gte=1,lte=10"`
	EmptyInputPolicy string `mapstructure:"empty_input_policy" validate:"required,oneof=forward reject"`
	SanitizeHTML     bool   `mapstructure:"sanitize_html"`
}

// RejectsEmptyInput reports whether empty keywords and prompts fail fast.
func (c ContentConfig) RejectsEmptyInput() bool {
	return c.EmptyInputPolicy == EmptyInputReject
}
