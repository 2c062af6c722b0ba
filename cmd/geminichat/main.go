// In file: cmd/geminichat/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dileep-u-k/weather-chat/internal/chat"
	"github.com/dileep-u-k/weather-chat/internal/config"
	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/logging"
	"github.com/dileep-u-k/weather-chat/internal/tools"
	"github.com/dileep-u-k/weather-chat/internal/version"
	"github.com/dileep-u-k/weather-chat/internal/weather"
)

type flags struct {
	model      string
	modelSet   bool
	configFile string
	envFile    string
	logLevel   string
}

func main() {
	_ = logging.Setup(os.Stderr, logging.DefaultLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("❌ FATAL")
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "geminichat",
		Short:         "Chat with a Gemini model that asks for weather with CALL_WEATHER(location)",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.modelSet = cmd.Flags().Changed("model")
			return run(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.model, "model", llm.DefaultGeminiModel, "Gemini model id")
	cmd.Flags().StringVar(&f.configFile, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file with API keys")
	cmd.Flags().StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "log level (trace, debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, f *flags) error {
	if err := logging.Setup(os.Stderr, f.logLevel); err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{EnvFile: f.envFile, ConfigFile: f.configFile})
	if err != nil {
		return errors.Wrap(err, "configuration error")
	}
	if f.modelSet {
		cfg.GeminiModel = f.model
	}
	warnings, err := cfg.Validate(config.Simulated)
	if err != nil {
		return errors.Wrap(err, "configuration error")
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEndpoint, cfg.GeminiTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Gemini client")
		}
	}()
	log.Debug().Str("model", cfg.GeminiModel).Msg("✅ Gemini client initialized")

	toolManager := tools.NewToolManager()
	toolManager.Register(tools.NewWeatherTool(weather.NewFetcher(cfg.WeatherAPIKey, cfg.WeatherURL, cfg.WeatherTimeout)))

	session := chat.NewSimulatedSession(client, toolManager, llm.NewIntentAnalyzer(cfg.WeatherKeywords...))
	if err := chat.NewLoop(chat.SimulatedLoopConfig(), session, os.Stdin, os.Stdout).Run(ctx); err != nil {
		return errors.Wrap(err, "chat ended")
	}
	return nil
}
