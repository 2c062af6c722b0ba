// In file: internal/tools/executor.go
package tools

import "context"

// ToolExecutor defines the standard interface for any tool the chat can run
// on behalf of the model.
type ToolExecutor interface {
	// Definition returns the schema that is declared to the model.
	Definition() Tool

	// Execute runs the tool with the model's JSON-encoded arguments and
	// returns the text that is handed back to the model.
	Execute(ctx context.Context, arguments string) (string, error)
}
