package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "WEATHER_API_KEY", "OPENAI_BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, 10*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, "https://api.weatherapi.com/v1/current.json", cfg.WeatherURL)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoadYAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
openai_model: gpt-4o-mini
gemini_timeout: 5s
weather_timeout: 2s
weather_keywords: [storm, fırtına]
`)

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel, "unset keys keep their defaults")
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, 2*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, []string{"storm", "fırtına"}, cfg.WeatherKeywords)
}

func TestLoadConfigFileErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(Options{ConfigFile: writeFile(t, "bad.yaml", "openai_model: [unclosed")})
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "from-env")
	envFile := writeFile(t, ".env", "OPENAI_API_KEY=from-file\nWEATHER_API_KEY=weather-from-file\n")
	t.Cleanup(func() { _ = os.Unsetenv("WEATHER_API_KEY") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "weather-from-file", cfg.WeatherAPIKey)
}

func TestCredentialsIgnoredInYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "OpenAIAPIKey: leaked\nopenai_api_key: leaked\n")

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestValidate(t *testing.T) {
	full := func() *Config {
		cfg := Default()
		cfg.OpenAIAPIKey = "sk"
		cfg.GeminiAPIKey = "gk"
		cfg.WeatherAPIKey = "wk"
		return cfg
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		variant  Variant
		wantErr  string
		warnings []string
	}{
		{name: "native ok", mutate: func(*Config) {}, variant: Native},
		{name: "simulated ok", mutate: func(*Config) {}, variant: Simulated},
		{
			name:    "native without openai key",
			mutate:  func(c *Config) { c.OpenAIAPIKey = "" },
			variant: Native,
			wantErr: "OPENAI_API_KEY is not set",
		},
		{
			name:    "native without weather key",
			mutate:  func(c *Config) { c.WeatherAPIKey = "" },
			variant: Native,
			wantErr: "WEATHER_API_KEY is not set",
		},
		{
			name:    "simulated without gemini key",
			mutate:  func(c *Config) { c.GeminiAPIKey = "" },
			variant: Simulated,
			wantErr: "GEMINI_API_KEY is not set",
		},
		{
			name:     "simulated without weather key warns",
			mutate:   func(c *Config) { c.WeatherAPIKey = "" },
			variant:  Simulated,
			warnings: []string{"WEATHER_API_KEY not set – weather queries will fail."},
		},
		{
			name:    "zero weather timeout",
			mutate:  func(c *Config) { c.WeatherTimeout = 0 },
			variant: Native,
			wantErr: "weather_timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full()
			tt.mutate(cfg)

			warnings, err := cfg.Validate(tt.variant)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.warnings, warnings)
		})
	}
}
