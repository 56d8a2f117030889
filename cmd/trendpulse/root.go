package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/generation"
	"github.com/phrazzld/trendpulse/internal/platform/gemini"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
	"github.com/spf13/cobra"
)

// cliOptions carries dependencies that tests replace.
type cliOptions struct {
	clientFactory gemini.ClientFactory
	// loadConfig replaces config loading; nil uses config.LoadFile.
	loadConfig func(path string) (*config.Config, error)
}

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	opts cliOptions

	cfgFile   string
	verbose   bool
	promptKey bool

	cfg     *config.Config
	logger  *slog.Logger
	service content.Service
}

// newRootCmd builds the command tree. Every call returns an independent tree.
func newRootCmd(opts cliOptions) *cobra.Command {
	c := &cli{opts: opts}

	root := &cobra.Command{
		Use:   "trendpulse",
		Short: "Trend discovery and short-video content planning",
		Long: `trendpulse discovers trending keywords, drafts short-video content plans
and renders thumbnails using the Gemini API.

Without an API key every command still succeeds and returns demo content,
marked with "mode": "demo". Failed calls return fallback content marked
with "mode": "fallback".

Example usage:
  trendpulse trends
  trendpulse plan "여름 페스티벌" --lat 37.55 --lng 126.92
  trendpulse thumbnail "a neon street at night" --size 2K --out thumb.png
  trendpulse --prompt-key trends     # ask for a key on stdin if none is set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./config.yaml if present)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&c.promptKey, "prompt-key", false, "ask for a Gemini API key on stdin when none is configured")

	root.AddCommand(
		newTrendsCmd(c),
		newPlanCmd(c),
		newThumbnailCmd(c),
	)
	return root
}

// init loads configuration, sets up logging and wires the content service.
func (c *cli) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to load .env file: %v\n", err)
	}

	load := c.opts.loadConfig
	if load == nil {
		load = config.LoadFile
	}
	path := c.cfgFile
	if path == "" {
		path = os.Getenv(config.ConfigFileEnv)
	}
	cfg, err := load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg

	serverCfg := cfg.Server
	serverCfg.LogFormat = "text"
	if c.verbose {
		serverCfg.LogLevel = "debug"
	}
	c.logger = logger.New(cmd.ErrOrStderr(), serverCfg)

	var storeOpts []credential.Option
	if c.promptKey {
		storeOpts = append(storeOpts,
			credential.WithPrompter(credential.NewReaderPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())))
	}
	store := credential.NewStore(cfg.LLM.GeminiAPIKey, storeOpts...)

	if c.promptKey && !store.Available(cmd.Context()) {
		if err := store.RequestSelection(cmd.Context()); err != nil {
			return fmt.Errorf("selecting credential: %w", err)
		}
	}

	var sourceOpts []gemini.SourceOption
	if c.opts.clientFactory != nil {
		sourceOpts = append(sourceOpts, gemini.WithClientFactory(c.opts.clientFactory))
	}
	source, err := gemini.NewSource(c.logger, cfg.LLM, store, sourceOpts...)
	if err != nil {
		return fmt.Errorf("creating generator source: %w", err)
	}

	builder, err := generation.NewBuilder(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating request builder: %w", err)
	}

	c.service, err = content.NewService(cfg.Content, store, source, builder, c.logger)
	if err != nil {
		return fmt.Errorf("creating content service: %w", err)
	}

	c.logger.Debug("configuration loaded",
		"api_key_present", store.Available(cmd.Context()),
		"empty_input_policy", cfg.Content.EmptyInputPolicy)
	return nil
}
