// In file: internal/llm/constants.go
package llm

import "time"

// Defaults shared by the provider clients.
const (
	DefaultOpenAIModel = "gpt-4.1"
	DefaultGeminiModel = "gemini-2.0-flash"

	// DefaultGenerateTimeout bounds each Gemini generate-content call.
	// OpenAI calls carry no client-side timeout.
	DefaultGenerateTimeout = 30 * time.Second
)
