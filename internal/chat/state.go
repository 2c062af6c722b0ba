// In file: internal/chat/state.go

// Package chat drives one user turn through the model gateway and runs the
// interactive read-print loop around it.
//
// Both gateway variants walk the same small state machine per turn:
//
//	AwaitingFirstReply -> Done                                  (plain answer)
//	AwaitingFirstReply -> AwaitingToolResult -> AwaitingFollowUp -> Done
//	AwaitingFirstReply -> AwaitingFollowUp -> Done              (corrective re-ask)
//
// A turn resolves at most one round of tool calls.
package chat

import "context"

// State is a step of the per-turn state machine.
type State int

const (
	AwaitingFirstReply State = iota
	AwaitingToolResult
	AwaitingFollowUp
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingFirstReply:
		return "awaiting_first_reply"
	case AwaitingToolResult:
		return "awaiting_tool_result"
	case AwaitingFollowUp:
		return "awaiting_follow_up"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// TurnHandler turns one line of user input into the reply to print.
type TurnHandler interface {
	HandleTurn(ctx context.Context, input string) (string, error)
}
