// In file: internal/config/config.go

// Package config builds the explicit configuration value shared by both chat
// programs. Nothing here is global; callers pass the *Config into each
// component constructor.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/weather"
)

// Variant selects which gateway a configuration is validated for.
type Variant int

const (
	// Native is the OpenAI tool-calling chat.
	Native Variant = iota
	// Simulated is the Gemini sentinel chat.
	Simulated
)

func (v Variant) String() string {
	if v == Simulated {
		return "simulated"
	}
	return "native"
}

// Config holds credentials, model ids, endpoints and timeouts.
// Credentials only ever come from the environment.
type Config struct {
	OpenAIAPIKey  string `yaml:"-"`
	GeminiAPIKey  string `yaml:"-"`
	WeatherAPIKey string `yaml:"-"`

	OpenAIModel   string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	GeminiModel    string        `yaml:"gemini_model"`
	GeminiEndpoint string        `yaml:"gemini_endpoint"`
	GeminiTimeout  time.Duration `yaml:"gemini_timeout"`

	WeatherURL     string        `yaml:"weather_url"`
	WeatherTimeout time.Duration `yaml:"weather_timeout"`
	// WeatherKeywords extends the built-in keyword list of the intent analyzer.
	WeatherKeywords []string `yaml:"weather_keywords"`
}

// Options names the optional files Load reads.
type Options struct {
	// EnvFile is a dotenv file. A missing file is not an error.
	EnvFile string
	// ConfigFile is a YAML file. Empty means none; a named file must exist.
	ConfigFile string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OpenAIModel:    llm.DefaultOpenAIModel,
		GeminiModel:    llm.DefaultGeminiModel,
		GeminiTimeout:  llm.DefaultGenerateTimeout,
		WeatherURL:     weather.DefaultEndpoint,
		WeatherTimeout: weather.DefaultTimeout,
	}
}

// Load layers defaults, the YAML file, the dotenv file and the process
// environment, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	if opts.ConfigFile != "" {
		data, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", opts.ConfigFile)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", opts.ConfigFile)
		}
	}

	if opts.EnvFile != "" {
		// godotenv.Load never overrides variables already in the environment.
		if err := godotenv.Load(opts.EnvFile); err != nil {
			if !os.IsNotExist(errors.Cause(err)) {
				return nil, errors.Wrapf(err, "failed to load env file %s", opts.EnvFile)
			}
			log.Debug().Str("file", opts.EnvFile).Msg("No env file found, relying on the process environment")
		}
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}

	return cfg, nil
}

// Validate reports whether the configuration can run the given variant.
// Problems that only degrade behavior are returned as warnings.
func (c *Config) Validate(variant Variant) (warnings []string, err error) {
	if c.WeatherTimeout <= 0 {
		return nil, errors.Errorf("weather_timeout must be positive, got %s", c.WeatherTimeout)
	}

	switch variant {
	case Native:
		if c.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		if c.WeatherAPIKey == "" {
			return nil, errors.New("WEATHER_API_KEY is not set")
		}
		if c.OpenAIModel == "" {
			return nil, errors.New("openai_model must not be empty")
		}
	case Simulated:
		if c.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is not set")
		}
		if c.GeminiModel == "" {
			return nil, errors.New("gemini_model must not be empty")
		}
		if c.GeminiTimeout <= 0 {
			return nil, errors.Errorf("gemini_timeout must be positive, got %s", c.GeminiTimeout)
		}
		if c.WeatherAPIKey == "" {
			warnings = append(warnings, "WEATHER_API_KEY not set – weather queries will fail.")
		}
	default:
		return nil, errors.Errorf("unknown variant %d", int(variant))
	}
	return warnings, nil
}
