// In file: internal/chat/simulated.go
package chat

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dileep-u-k/weather-chat/internal/llm"
	"github.com/dileep-u-k/weather-chat/internal/tools"
)

// WeatherQueryDetector is the independent keyword heuristic.
type WeatherQueryDetector interface {
	IsWeatherQuery(text string) bool
}

// SimulatedTurn records what one simulated turn did.
type SimulatedTurn struct {
	Reply string
	// Sentinel is how the first reply was classified.
	Sentinel llm.SentinelKind
	// Call is the get_weather call synthesized from CALL_WEATHER(location).
	// It is nil unless the weather was actually fetched.
	Call *tools.ToolCall
	// ToolResult is the text Call produced.
	ToolResult string
}

// SimulatedSession is the simulated tool-calling gateway. Each user turn is
// handled on its own; nothing is carried to the provider between turns.
type SimulatedSession struct {
	generator llm.ContentGenerator
	tools     ToolRunner
	detector  WeatherQueryDetector
}

var _ TurnHandler = (*SimulatedSession)(nil)

// NewSimulatedSession dispatches synthesized weather calls through toolRunner,
// which must have the get_weather tool registered.
func NewSimulatedSession(generator llm.ContentGenerator, toolRunner ToolRunner, detector WeatherQueryDetector) *SimulatedSession {
	return &SimulatedSession{
		generator: generator,
		tools:     toolRunner,
		detector:  detector,
	}
}

// HandleTurn runs Turn and returns only the reply.
func (s *SimulatedSession) HandleTurn(ctx context.Context, input string) (string, error) {
	turn, err := s.Turn(ctx, input)
	if err != nil {
		return "", err
	}
	return turn.Reply, nil
}

// Turn asks the model, and when it answers with CALL_WEATHER(location)
// and the keyword heuristic agrees, fetches the weather and asks again with
// the data attached. A sentinel the heuristic does not back is treated as a
// false positive and the question is re-asked without weather.
func (s *SimulatedSession) Turn(ctx context.Context, input string) (*SimulatedTurn, error) {
	var (
		state    = AwaitingFirstReply
		location string
		prompt   string
		turn     = &SimulatedTurn{}
	)
	for state != Done {
		log.Debug().Stringer("state", state).Msg("simulated turn")
		switch state {
		case AwaitingFirstReply:
			first, err := s.generator.GenerateText(ctx, firstPrompt(input))
			if err != nil {
				return nil, errors.Wrap(err, "first generate call failed")
			}
			sentinel := llm.ParseSentinel(first)
			turn.Sentinel = sentinel.Kind
			weatherAsked := s.detector.IsWeatherQuery(input)
			log.Debug().
				Stringer("sentinel", sentinel.Kind).
				Bool("weather_query", weatherAsked).
				Msg("🔍 First reply classified")

			switch sentinel.Kind {
			case llm.SentinelNoCall:
				turn.Reply = first
				state = Done
			case llm.SentinelCall:
				if weatherAsked {
					location = sentinel.Location
					state = AwaitingToolResult
				} else {
					log.Info().Str("reply", sentinel.Raw).Msg("⚠️ Ignoring weather call for a non-weather question")
					prompt = falsePositivePrompt(input)
					state = AwaitingFollowUp
				}
			case llm.SentinelMalformed:
				log.Info().Str("reply", sentinel.Raw).Msg("⚠️ Malformed weather call, asking for a plain answer")
				prompt = malformedPrompt(input)
				state = AwaitingFollowUp
			}

		case AwaitingToolResult:
			call, err := newWeatherCall(location)
			if err != nil {
				return nil, err
			}
			turn.Call = &call
			turn.ToolResult = executeTool(ctx, s.tools, call)
			prompt = weatherPrompt(input, turn.ToolResult)
			state = AwaitingFollowUp

		case AwaitingFollowUp:
			followUp, err := s.generator.GenerateText(ctx, prompt)
			if err != nil {
				return nil, errors.Wrap(err, "follow-up generate call failed")
			}
			if llm.ParseSentinel(followUp).Kind != llm.SentinelNoCall {
				log.Warn().Str("reply", followUp).Msg("⚠️ Follow-up still carried the weather sentinel")
				followUp = sentinelFailureReply
			}
			turn.Reply = followUp
			state = Done
		}
	}
	return turn, nil
}

// newWeatherCall synthesizes the get_weather call the sentinel stands for, with
// a fresh id since the provider issues none.
func newWeatherCall(location string) (tools.ToolCall, error) {
	args, err := json.Marshal(map[string]string{"location": location})
	if err != nil {
		return tools.ToolCall{}, errors.Wrap(err, "failed to encode weather call arguments")
	}
	return tools.ToolCall{
		ID:   "call_" + uuid.NewString(),
		Type: tools.ToolTypeFunction,
		Function: tools.ToolCallFunction{
			Name:      tools.WeatherToolName,
			Arguments: string(args),
		},
	}, nil
}
