// In file: internal/llm/openai_client.go
package llm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/dileep-u-k/weather-chat/internal/tools"
)

const providerOpenAI = "openai"

// OpenAIClient is the native tool-calling gateway over the chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// Statically verify that OpenAIClient implements the ChatCompleter interface.
var _ ChatCompleter = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for model. baseURL overrides the API root
// (e.g. "http://localhost:8080/v1") and may be empty.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Complete performs one blocking chat completion. Tools are declared with
// tool_choice "auto" only when availableTools is non-empty.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, availableTools []tools.Tool) (*GenerationResult, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
		Tools:    toOpenAITools(availableTools),
	}
	if len(req.Tools) > 0 {
		req.ToolChoice = "auto"
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &ProviderError{Provider: providerOpenAI, Kind: FailureRequest, Err: err}
	}

	result, err := parseOpenAIResponse(resp)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("model", c.model).
		Int("prompt_tokens", result.Usage.PromptTokens).
		Int("completion_tokens", result.Usage.CompletionTokens).
		Int("tool_calls", len(result.ToolCalls)).
		Msg("✅ OpenAI completion received")
	return result, nil
}

// toOpenAIMessages converts our internal message slice to the OpenAI API format.
func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		m := openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
		switch msg.Role {
		case RoleTool:
			m.ToolCallID = msg.ToolCallID
		case RoleAssistant:
			for _, tc := range msg.ToolCalls {
				m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				})
			}
		}
		out = append(out, m)
	}
	return out
}

// toOpenAITools converts our internal tool slice to the OpenAI API format.
func toOpenAITools(availableTools []tools.Tool) []openai.Tool {
	if len(availableTools) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(availableTools))
	for _, tool := range availableTools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Strict:      tool.Function.Strict,
				Parameters:  tool.Function.Parameters,
			},
		})
	}
	return out
}

// parseOpenAIResponse converts the first choice into a GenerationResult.
func parseOpenAIResponse(resp openai.ChatCompletionResponse) (*GenerationResult, error) {
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{
			Provider: providerOpenAI,
			Kind:     FailureUnexpectedResponse,
			Err:      errors.New("no choices returned"),
		}
	}

	msg := resp.Choices[0].Message
	result := &GenerationResult{
		Content: msg.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, tc := range msg.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, tools.ToolCall{
			ID:   tc.ID,
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return result, nil
}
