package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every configuration environment variable.
const EnvPrefix = "TRENDPULSE"

// ConfigFileEnv names the environment variable pointing at a config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile is Load with an explicit config file path. An empty path looks for
// an optional config.yaml in the working directory.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.CORSAllowedOrigins = trimAll(cfg.Server.CORSAllowedOrigins)
	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)
	cfg.Content.EmptyInputPolicy = strings.ToLower(cfg.Content.EmptyInputPolicy)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.credential_api_enabled", false)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.trends_model", "gemini-2.5-flash")
	v.SetDefault("llm.plan_model", "gemini-2.5-flash")
	v.SetDefault("llm.image_model", "gemini-3-pro-image-preview")
	v.SetDefault("llm.image_aspect_ratio", "9:16")
	v.SetDefault("llm.trend_region", "한국")
	v.SetDefault("llm.request_timeout_seconds", 0)
	v.SetDefault("llm.prompt_template_dir", "")

	v.SetDefault("content.trend_count", 5)
	v.SetDefault("content.empty_input_policy", EmptyInputForward)
	v.SetDefault("content.sanitize_html", true)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
