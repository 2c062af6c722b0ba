// In file: internal/llm/client.go

// Package llm contains the model-facing side of the chat: message types, the
// OpenAI and Gemini transports, and the helpers that interpret model output
// (the weather keyword heuristic and the CALL_WEATHER sentinel parser).
package llm

import (
	"context"

	"github.com/dileep-u-k/weather-chat/internal/tools"
)

// =================================================================================
// Core Data Structures
// =================================================================================

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of a transcript. Assistant turns that requested tools
// carry ToolCalls; tool-result turns carry the ToolCallID they answer.
type Message struct {
	Role       Role             `json:"role"`
	Content    string           `json:"content"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	ToolCalls  []tools.ToolCall `json:"tool_calls,omitempty"`
}

// Clone returns a copy of m that shares no slices with it.
func (m Message) Clone() Message {
	if m.ToolCalls != nil {
		calls := make([]tools.ToolCall, len(m.ToolCalls))
		copy(calls, m.ToolCalls)
		m.ToolCalls = calls
	}
	return m
}

// Usage holds token accounting reported by a provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResult holds the complete output of a chat completion call.
type GenerationResult struct {
	// Content is the free-text reply, empty when the model requested tools.
	Content string
	// ToolCalls lists the structured tool requests, in the order the model sent them.
	ToolCalls []tools.ToolCall
	// Usage is the token accounting for the call.
	Usage Usage
}

// =================================================================================
// Gateway Interfaces
// =================================================================================

// ChatCompleter is a chat-completion endpoint with native tool calling.
type ChatCompleter interface {
	// Complete sends the transcript and, when availableTools is non-empty,
	// declares those tools with tool choice left to the model.
	Complete(ctx context.Context, messages []Message, availableTools []tools.Tool) (*GenerationResult, error)
}

// ContentGenerator is a generate-content endpoint that takes one prompt
// string and returns free text.
type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
