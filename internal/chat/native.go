// In file: internal/chat/native.go
package chat

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/tools"
	"github.com/dileep-u-k/weather-chat/internal/transcript"
)

// ToolRunner is the registry the native session declares and dispatches tools through.
type ToolRunner interface {
	Definitions() []tools.Tool
	Execute(ctx context.Context, name, arguments string) (string, error)
}

// NativeSession is the native tool-calling gateway. It keeps the accumulated
// transcript for the whole process run.
type NativeSession struct {
	client     llm.ChatCompleter
	tools      ToolRunner
	transcript transcript.Transcript
}

var _ TurnHandler = (*NativeSession)(nil)

// NewNativeSession starts a transcript with systemPrompt (skipped when empty).
func NewNativeSession(client llm.ChatCompleter, toolRunner ToolRunner, systemPrompt string) *NativeSession {
	var tr transcript.Transcript
	if systemPrompt != "" {
		tr = transcript.New(llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	}
	return &NativeSession{
		client:     client,
		tools:      toolRunner,
		transcript: tr,
	}
}

// Transcript returns the committed transcript.
func (s *NativeSession) Transcript() transcript.Transcript {
	return s.transcript
}

// HandleTurn runs one user turn. The transcript is only replaced once the
// turn has produced a final reply; a failed turn leaves it unchanged.
func (s *NativeSession) HandleTurn(ctx context.Context, input string) (string, error) {
	working := s.transcript.Append(llm.Message{Role: llm.RoleUser, Content: input})

	var (
		state   = AwaitingFirstReply
		pending []tools.ToolCall
		reply   string
	)
	for state != Done {
		log.Debug().Stringer("state", state).Msg("native turn")
		switch state {
		case AwaitingFirstReply:
			result, err := s.client.Complete(ctx, working.Messages(), s.tools.Definitions())
			if err != nil {
				return "", errors.Wrap(err, "first model call failed")
			}
			if len(result.ToolCalls) == 0 {
				reply = result.Content
				state = Done
				continue
			}
			working = working.Append(llm.Message{
				Role:      llm.RoleAssistant,
				Content:   result.Content,
				ToolCalls: result.ToolCalls,
			})
			pending = result.ToolCalls
			state = AwaitingToolResult

		case AwaitingToolResult:
			for _, call := range pending {
				working = working.Append(llm.Message{
					Role:       llm.RoleTool,
					ToolCallID: call.ID,
					Content:    executeTool(ctx, s.tools, call),
				})
			}
			pending = nil
			state = AwaitingFollowUp

		case AwaitingFollowUp:
			result, err := s.client.Complete(ctx, working.Messages(), nil)
			if err != nil {
				return "", errors.Wrap(err, "follow-up model call failed")
			}
			reply = result.Content
			state = Done
		}
	}

	working = working.Append(llm.Message{Role: llm.RoleAssistant, Content: reply})
	if err := working.Validate(); err != nil {
		return "", errors.Wrap(err, "transcript invariant violated")
	}
	s.transcript = working
	return reply, nil
}

// executeTool always yields tool-result text; execution errors become text too.
func executeTool(ctx context.Context, runner ToolRunner, call tools.ToolCall) string {
	log.Debug().
		Str("tool", call.Function.Name).
		Str("id", call.ID).
		Str("args", call.Function.Arguments).
		Msg("🛠️ Executing tool")
	result, err := runner.Execute(ctx, call.Function.Name, call.Function.Arguments)
	if err != nil {
		log.Warn().Err(err).Str("tool", call.Function.Name).Msg("⚠️ Tool execution failed")
		return fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
	}
	return result
}
