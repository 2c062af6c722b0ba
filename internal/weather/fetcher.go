// In file: internal/weather/fetcher.go

// Package weather fetches current conditions from WeatherAPI.com and renders
// them as a single line of text that can be handed straight to a model.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultEndpoint is the WeatherAPI.com current conditions endpoint.
	DefaultEndpoint = "https://api.weatherapi.com/v1/current.json"
	// DefaultTimeout bounds a single weather lookup.
	DefaultTimeout = 10 * time.Second

	failurePrefix = "Failed to fetch weather: "
)

// Fetcher is the Weather Fetcher. It holds its own HTTP client so every lookup
// is bounded by the configured timeout.
type Fetcher struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewFetcher creates a Fetcher. An empty endpoint falls back to DefaultEndpoint
// and a non-positive timeout to DefaultTimeout. An empty API key is accepted;
// lookups will then fail with the provider's error text.
func NewFetcher(apiKey, endpoint string, timeout time.Duration) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// currentResponse mirrors the subset of the current.json body we read.
// Pointers and json.Number let us tell a missing field from a zero value.
type currentResponse struct {
	Location *struct {
		Name    *string `json:"name"`
		Country *string `json:"country"`
	} `json:"location"`
	Current *struct {
		TempC     json.Number `json:"temp_c"`
		Condition *struct {
			Text *string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// Fetch returns "{name}, {country}: {temp}°C, {condition}" for the location,
// or "Failed to fetch weather: {cause}" on any failure. It never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, location string) string {
	summary, err := f.fetch(ctx, location)
	if err != nil {
		log.Warn().Err(err).Str("location", location).Msg("⚠️ Weather lookup failed")
		return failurePrefix + err.Error()
	}
	log.Debug().Str("location", location).Str("summary", summary).Msg("🌤️ Weather lookup succeeded")
	return summary
}

func (f *Fetcher) fetch(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", errors.New("location cannot be empty")
	}

	base, err := url.Parse(f.endpoint)
	if err != nil {
		return "", errors.Wrap(err, "invalid weather endpoint")
	}
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("q", location)
	params.Set("aqi", "no")
	base.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create weather API request")
	}
	req.Header.Set("User-Agent", "weather-chat/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to call weather API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read weather API response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("weather API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseCurrent(body)
}

// parseCurrent extracts and formats the summary line. The temperature keeps
// the provider's literal number text, so 21.0 stays "21.0".
func parseCurrent(body []byte) (string, error) {
	var data currentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", errors.Wrap(err, "failed to parse weather API JSON response")
	}

	switch {
	case data.Location == nil || data.Location.Name == nil:
		return "", errors.New("missing field location.name")
	case data.Location.Country == nil:
		return "", errors.New("missing field location.country")
	case data.Current == nil || data.Current.TempC == "":
		return "", errors.New("missing field current.temp_c")
	case data.Current.Condition == nil || data.Current.Condition.Text == nil:
		return "", errors.New("missing field current.condition.text")
	}
	temp, err := data.Current.TempC.Float64()
	if err != nil {
		return "", errors.Wrap(err, "invalid field current.temp_c")
	}

	return fmt.Sprintf("%s, %s: %s°C, %s",
		*data.Location.Name,
		*data.Location.Country,
		formatTemp(data.Current.TempC, temp),
		*data.Current.Condition.Text,
	), nil
}

// formatTemp keeps plain literals verbatim and spells out exponent forms as
// decimals, so 1e2 renders as 100.0.
func formatTemp(literal json.Number, value float64) string {
	text := literal.String()
	if !strings.ContainsAny(text, "eE") {
		return text
	}
	out := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
