// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const providerGemini = "gemini"

// GeminiClient is the generate-content gateway used by the simulated
// tool-calling chat. Each call sends a single text prompt.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	modelID string
	timeout time.Duration
}

var _ ContentGenerator = (*GeminiClient)(nil)

// NewGeminiClient creates a client for modelID. endpoint may be empty; a
// non-positive timeout falls back to DefaultGenerateTimeout.
func NewGeminiClient(ctx context.Context, apiKey, modelID, endpoint string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if modelID == "" {
		modelID = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}
	return &GeminiClient{
		client:  client,
		model:   client.GenerativeModel(modelID),
		modelID: modelID,
		timeout: timeout,
	}, nil
}

// GenerateText sends prompt and returns the trimmed text of the first part of
// the first candidate.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", &ProviderError{
				Provider: providerGemini,
				Kind:     FailureUnexpectedResponse,
				Detail:   dumpResponse(blocked),
				Err:      err,
			}
		}
		return "", &ProviderError{Provider: providerGemini, Kind: FailureRequest, Err: err}
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	if resp.UsageMetadata != nil {
		log.Debug().
			Str("model", c.modelID).
			Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount).
			Int32("completion_tokens", resp.UsageMetadata.CandidatesTokenCount).
			Msg("✅ Gemini content received")
	}
	return text, nil
}

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// responseText reads candidates[0].content.parts[0] as text.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	unexpected := func(reason string) error {
		return &ProviderError{
			Provider: providerGemini,
			Kind:     FailureUnexpectedResponse,
			Detail:   dumpResponse(resp),
			Err:      errors.New(reason),
		}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", unexpected("no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", unexpected("candidate has no content parts")
	}
	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return "", unexpected(fmt.Sprintf("first part is %T, not text", candidate.Content.Parts[0]))
	}
	return strings.TrimSpace(string(text)), nil
}

func dumpResponse(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(raw)
}
