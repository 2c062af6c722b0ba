package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/tools"
)

func newNative(completer *fakeCompleter, weather *fakeWeather) *NativeSession {
	tm := tools.NewToolManager()
	tm.Register(tools.NewWeatherTool(weather))
	return NewNativeSession(completer, tm, NativeSystemPrompt)
}

func TestNativePlainReply(t *testing.T) {
	completer := &fakeCompleter{results: []*llm.GenerationResult{{Content: "Hello there!"}}}
	s := newNative(completer, &fakeWeather{})

	reply, err := s.HandleTurn(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", reply)

	require.Len(t, completer.calls, 1)
	assert.Len(t, completer.calls[0].tools, 1, "first call declares get_weather")

	tr := s.Transcript()
	require.Equal(t, 3, tr.Len())
	assert.Equal(t, llm.RoleSystem, tr.At(0).Role)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "hi"}, tr.At(1))
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "Hello there!"}, tr.At(2))
}

func TestNativeResolvesEveryToolCallWithOneFollowUp(t *testing.T) {
	calls := []tools.ToolCall{
		weatherCall("call_a", "Istanbul"),
		weatherCall("call_b", "Ankara"),
		{ID: "call_c", Type: tools.ToolTypeFunction, Function: tools.ToolCallFunction{Name: "get_time", Arguments: `{}`}},
		{ID: "call_d", Type: tools.ToolTypeFunction, Function: tools.ToolCallFunction{Name: tools.WeatherToolName, Arguments: `not json`}},
	}
	completer := &fakeCompleter{results: []*llm.GenerationResult{
		{ToolCalls: calls},
		{Content: "Istanbul is 21.0°C and Ankara is 15.0°C."},
	}}
	weather := &fakeWeather{summary: "Somewhere, Turkey: 21.0°C, Sunny"}
	s := newNative(completer, weather)
	before := s.Transcript()

	reply, err := s.HandleTurn(context.Background(), "Weather in Istanbul and Ankara?")
	require.NoError(t, err)
	assert.Equal(t, "Istanbul is 21.0°C and Ankara is 15.0°C.", reply)

	require.Len(t, completer.calls, 2, "exactly one follow-up call")
	assert.Empty(t, completer.calls[1].tools, "follow-up declares no tools")
	assert.Equal(t, []string{"Istanbul", "Ankara"}, weather.locations)

	tr := s.Transcript()
	require.NoError(t, tr.Validate())
	assert.True(t, tr.HasPrefix(before))

	// system, user, assistant(tool calls), 4 tool results, assistant reply
	require.Equal(t, 1+1+1+len(calls)+1, tr.Len())
	assistant := tr.At(2)
	assert.Equal(t, llm.RoleAssistant, assistant.Role)
	assert.Equal(t, calls, assistant.ToolCalls)

	seen := map[string]bool{}
	var results []string
	for i := 3; i < 3+len(calls); i++ {
		turn := tr.At(i)
		assert.Equal(t, llm.RoleTool, turn.Role)
		assert.False(t, seen[turn.ToolCallID])
		seen[turn.ToolCallID] = true
		results = append(results, turn.Content)
	}
	assert.Len(t, seen, len(calls))
	assert.Equal(t, "Somewhere, Turkey: 21.0°C, Sunny", results[0])
	assert.Equal(t, "Somewhere, Turkey: 21.0°C, Sunny", results[1])
	assert.Equal(t, "Unknown function: get_time", results[2])
	assert.Contains(t, results[3], "Error executing tool get_weather")

	// The follow-up saw the whole working transcript minus the final reply.
	assert.Len(t, completer.calls[1].messages, tr.Len()-1)
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: reply}, tr.At(tr.Len()-1))
}

func TestNativeFailedTurnKeepsTranscript(t *testing.T) {
	tests := []struct {
		name      string
		completer *fakeCompleter
	}{
		{
			name:      "first call fails",
			completer: &fakeCompleter{errs: []error{assert.AnError}},
		},
		{
			name: "follow-up fails",
			completer: &fakeCompleter{
				results: []*llm.GenerationResult{{ToolCalls: []tools.ToolCall{weatherCall("call_a", "Paris")}}, nil},
				errs:    []error{nil, assert.AnError},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newNative(tt.completer, &fakeWeather{summary: "ok"})
			before := s.Transcript()

			_, err := s.HandleTurn(context.Background(), "weather in Paris?")
			require.Error(t, err)
			assert.ErrorIs(t, err, assert.AnError)
			assert.Equal(t, before.Len(), s.Transcript().Len())
		})
	}
}

func TestNativeTranscriptAccumulatesAcrossTurns(t *testing.T) {
	completer := &fakeCompleter{results: []*llm.GenerationResult{
		{Content: "first"},
		{Content: "second"},
	}}
	s := newNative(completer, &fakeWeather{})

	_, err := s.HandleTurn(context.Background(), "one")
	require.NoError(t, err)
	afterFirst := s.Transcript()

	_, err = s.HandleTurn(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, s.Transcript().HasPrefix(afterFirst))
	assert.Equal(t, 5, s.Transcript().Len())
	assert.Len(t, completer.calls[1].messages, 4, "second call carries the earlier turns")
}
