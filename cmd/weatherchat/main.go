// In file: cmd/weatherchat/main.go
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
		Use:           "weatherchat",
		Short:         "Chat with an OpenAI model that can look up the current weather",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.modelSet = cmd.Flags().Changed("model")
			return run(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.model, "model", llm.DefaultOpenAIModel, "OpenAI model id")
	cmd.Flags().StringVar(&f.configFile, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file with API keys")
	cmd.Flags().StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "log level (trace, debug, info, warn, error)")
	return cmd
}

// run is the composition root: configuration, the weather tool, the OpenAI
// transport and the session are built here and handed to the loop.
func run(ctx context.Context, f *flags) error {
	if err := logging.Setup(os.Stderr, f.logLevel); err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{EnvFile: f.envFile, ConfigFile: f.configFile})
	if err != nil {
		return errors.Wrap(err, "configuration error")
	}
	if f.modelSet {
		cfg.OpenAIModel = f.model
	}
	warnings, err := cfg.Validate(config.Native)
	if err != nil {
		return errors.Wrap(err, "configuration error")
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	toolManager := tools.NewToolManager()
	toolManager.Register(tools.NewWeatherTool(weather.NewFetcher(cfg.WeatherAPIKey, cfg.WeatherURL, cfg.WeatherTimeout)))
	log.Debug().Int("tools", toolManager.ToolCount()).Msg("✅ Tools registered")

	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	if err != nil {
		return err
	}
	log.Debug().Str("model", cfg.OpenAIModel).Msg("✅ OpenAI client initialized")

	session := chat.NewNativeSession(client, toolManager, chat.NativeSystemPrompt)
	return chat.NewLoop(chat.NativeLoopConfig(), session, os.Stdin, os.Stdout).Run(ctx)
}
