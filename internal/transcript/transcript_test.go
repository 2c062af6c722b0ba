package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/tools"
)

func call(id string) tools.ToolCall {
	return tools.ToolCall{
		ID:       id,
		Type:     tools.ToolTypeFunction,
		Function: tools.ToolCallFunction{Name: "get_weather", Arguments: `{"location":"Istanbul"}`},
	}
}

func TestAppendLeavesReceiverUntouched(t *testing.T) {
	base := New(llm.Message{Role: llm.RoleSystem, Content: "sys"})
	next := base.Append(llm.Message{Role: llm.RoleUser, Content: "hi"})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, next.Len())
	assert.True(t, next.HasPrefix(base))
	assert.False(t, base.HasPrefix(next))

	// Two appends from the same base must not see each other.
	other := base.Append(llm.Message{Role: llm.RoleUser, Content: "other"})
	assert.Equal(t, "hi", next.At(1).Content)
	assert.Equal(t, "other", other.At(1).Content)
}

func TestReturnedTurnsAreCopies(t *testing.T) {
	tr := New(llm.Message{Role: llm.RoleAssistant, ToolCalls: []tools.ToolCall{call("a")}})

	msgs := tr.Messages()
	msgs[0].Content = "mutated"
	msgs[0].ToolCalls[0].ID = "mutated"

	turn := tr.At(0)
	assert.Empty(t, turn.Content)
	assert.Equal(t, "a", turn.ToolCalls[0].ID)

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "a", last.ToolCalls[0].ID)

	_, ok = Transcript{}.Last()
	assert.False(t, ok)
}

func TestAppendCopiesCallerSlices(t *testing.T) {
	calls := []tools.ToolCall{call("a")}
	tr := New(llm.Message{Role: llm.RoleAssistant, ToolCalls: calls})
	calls[0].ID = "changed"
	assert.Equal(t, "a", tr.At(0).ToolCalls[0].ID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		turns   []llm.Message
		wantErr string
	}{
		{
			name: "answered calls",
			turns: []llm.Message{
				{Role: llm.RoleUser, Content: "weather?"},
				{Role: llm.RoleAssistant, ToolCalls: []tools.ToolCall{call("a"), call("b")}},
				{Role: llm.RoleTool, ToolCallID: "a", Content: "x"},
				{Role: llm.RoleTool, ToolCallID: "b", Content: "y"},
				{Role: llm.RoleAssistant, Content: "done"},
			},
		},
		{
			name: "result before call",
			turns: []llm.Message{
				{Role: llm.RoleTool, ToolCallID: "a", Content: "x"},
				{Role: llm.RoleAssistant, ToolCalls: []tools.ToolCall{call("a")}},
			},
			wantErr: "unknown call id",
		},
		{
			name: "answered twice",
			turns: []llm.Message{
				{Role: llm.RoleAssistant, ToolCalls: []tools.ToolCall{call("a")}},
				{Role: llm.RoleTool, ToolCallID: "a", Content: "x"},
				{Role: llm.RoleTool, ToolCallID: "a", Content: "x"},
			},
			wantErr: "answered twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.turns...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
