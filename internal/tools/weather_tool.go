// In file: internal/tools/weather_tool.go
package tools

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// WeatherToolName is the function name declared to the model.
const WeatherToolName = "get_weather"

// WeatherLookup is the part of the Weather Fetcher the tool depends on.
type WeatherLookup interface {
	Fetch(ctx context.Context, location string) string
}

// WeatherTool exposes the Weather Fetcher as the get_weather function.
type WeatherTool struct {
	lookup WeatherLookup
}

// Statically verify that WeatherTool implements the ToolExecutor interface.
var _ ToolExecutor = (*WeatherTool)(nil)

// NewWeatherTool creates a WeatherTool backed by lookup.
func NewWeatherTool(lookup WeatherLookup) *WeatherTool {
	return &WeatherTool{lookup: lookup}
}

// Definition declares get_weather(location: string) in strict mode.
func (wt *WeatherTool) Definition() Tool {
	return NewFunctionTool(
		WeatherToolName,
		"Returns a current weather summary for a given location.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "City or geographic location, e.g. 'Istanbul'.",
				},
			},
			Required:             []string{"location"},
			AdditionalProperties: Bool(false),
		},
		true,
	)
}

// Execute decodes {"location": ...} and returns the fetcher's summary line,
// which is either the weather or a "Failed to fetch weather" message.
func (wt *WeatherTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", errors.Wrap(err, "invalid arguments for weather tool")
	}
	return wt.lookup.Fetch(ctx, args.Location), nil
}
