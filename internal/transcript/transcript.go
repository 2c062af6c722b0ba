// In file: internal/transcript/transcript.go

// Package transcript holds the ordered, append-only record of a chat.
//
// A Transcript is a value. Append never touches the receiver; it returns a
// new Transcript, so a turn that fails halfway can simply drop its working
// copy and the committed history is unchanged.
package transcript

import (
	"github.com/pkg/errors"

	"github.com/dileep-u-k/weather-chat/internal/llm"
)

// Transcript is an immutable ordered sequence of turns.
type Transcript struct {
	turns []llm.Message
}

// New returns a transcript holding turns.
func New(turns ...llm.Message) Transcript {
	return Transcript{}.Append(turns...)
}

// Append returns a new transcript with turns added at the end.
func (t Transcript) Append(turns ...llm.Message) Transcript {
	out := make([]llm.Message, 0, len(t.turns)+len(turns))
	out = append(out, t.turns...)
	for _, turn := range turns {
		out = append(out, turn.Clone())
	}
	return Transcript{turns: out}
}

// Len returns the number of turns.
func (t Transcript) Len() int {
	return len(t.turns)
}

// At returns a copy of the i-th turn.
func (t Transcript) At(i int) llm.Message {
	return t.turns[i].Clone()
}

// Last returns a copy of the final turn and false when the transcript is empty.
func (t Transcript) Last() (llm.Message, bool) {
	if len(t.turns) == 0 {
		return llm.Message{}, false
	}
	return t.At(len(t.turns) - 1), true
}

// Messages returns a copy of all turns, ready to hand to a provider.
func (t Transcript) Messages() []llm.Message {
	out := make([]llm.Message, len(t.turns))
	for i, turn := range t.turns {
		out[i] = turn.Clone()
	}
	return out
}

// HasPrefix reports whether prev's turns are the leading turns of t.
func (t Transcript) HasPrefix(prev Transcript) bool {
	if len(prev.turns) > len(t.turns) {
		return false
	}
	for i := range prev.turns {
		if !sameTurn(prev.turns[i], t.turns[i]) {
			return false
		}
	}
	return true
}

// Validate checks that every tool-result turn answers a call id issued by a
// strictly preceding assistant turn, and that no id is answered twice.
func (t Transcript) Validate() error {
	issued := make(map[string]bool)
	answered := make(map[string]bool)
	for i, turn := range t.turns {
		switch turn.Role {
		case llm.RoleAssistant:
			for _, call := range turn.ToolCalls {
				issued[call.ID] = true
			}
		case llm.RoleTool:
			if !issued[turn.ToolCallID] {
				return errors.Errorf("turn %d: tool result for unknown call id %q", i, turn.ToolCallID)
			}
			if answered[turn.ToolCallID] {
				return errors.Errorf("turn %d: call id %q answered twice", i, turn.ToolCallID)
			}
			answered[turn.ToolCallID] = true
		}
	}
	return nil
}

func sameTurn(a, b llm.Message) bool {
	if a.Role != b.Role || a.Content != b.Content || a.ToolCallID != b.ToolCallID || len(a.ToolCalls) != len(b.ToolCalls) {
		return false
	}
	for i := range a.ToolCalls {
		if a.ToolCalls[i] != b.ToolCalls[i] {
			return false
		}
	}
	return true
}
