// In file: internal/chat/loop.go
package chat

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LoopConfig holds the user-visible text of a chat program.
type LoopConfig struct {
	Banner   string
	Prompt   string
	Farewell string
	// ReplyFormat renders a reply, e.g. "assistant: %s\n".
	ReplyFormat string
	// ErrorFormat renders a failed turn when ContinueOnError is set.
	ErrorFormat string
	// SkipEmpty drops blank lines instead of forwarding them.
	SkipEmpty bool
	// ContinueOnError prints a failed turn and keeps looping; otherwise the
	// error ends the loop and is returned from Run.
	ContinueOnError bool
}

// NativeLoopConfig is the text of the native tool-calling chat.
func NativeLoopConfig() LoopConfig {
	return LoopConfig{
		Banner:          "Assistant ready. Type 'exit' to quit.\n",
		Prompt:          "you: ",
		Farewell:        "assistant: See you soon!",
		ReplyFormat:     "assistant: %s\n",
		ErrorFormat:     "assistant: request failed: %v\n",
		ContinueOnError: true,
	}
}

// SimulatedLoopConfig is the text of the simulated tool-calling chat.
func SimulatedLoopConfig() LoopConfig {
	return LoopConfig{
		Banner:      "Gemini CLI - type 'exit' to quit.",
		Prompt:      "Prompt> ",
		Farewell:    "Goodbye.",
		ReplyFormat: "\nAssistant> %s\n\n",
		SkipEmpty:   true,
	}
}

// Loop is the conversation loop: read a line, hand it to the gateway, print
// the reply.
type Loop struct {
	cfg     LoopConfig
	handler TurnHandler
	in      io.Reader
	out     io.Writer
}

func NewLoop(cfg LoopConfig, handler TurnHandler, in io.Reader, out io.Writer) *Loop {
	return &Loop{cfg: cfg, handler: handler, in: in, out: out}
}

// Run loops until exit/quit, end of input or cancellation, all of which
// print the farewell and return nil. Any other error is returned.
func (l *Loop) Run(ctx context.Context) error {
	lines := newLineReader(l.in)
	defer lines.Close()

	fmt.Fprintln(l.out, l.cfg.Banner)
	for {
		fmt.Fprint(l.out, l.cfg.Prompt)
		line, err := lines.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				fmt.Fprintln(l.out)
				fmt.Fprintln(l.out, l.cfg.Farewell)
				return nil
			}
			return errors.Wrap(err, "failed to read input")
		}

		input := strings.TrimSpace(line)
		if isExitCommand(input) {
			fmt.Fprintln(l.out, l.cfg.Farewell)
			return nil
		}
		if input == "" && l.cfg.SkipEmpty {
			continue
		}

		reply, err := l.handler.HandleTurn(ctx, input)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(l.out)
				fmt.Fprintln(l.out, l.cfg.Farewell)
				return nil
			}
			if !l.cfg.ContinueOnError {
				return err
			}
			log.Error().Err(err).Msg("❌ Turn failed")
			fmt.Fprintf(l.out, l.cfg.ErrorFormat, err)
			continue
		}
		fmt.Fprintf(l.out, l.cfg.ReplyFormat, reply)
	}
}

func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}
