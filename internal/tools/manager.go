// In file: internal/tools/manager.go
package tools

import (
	"context"
	"fmt"
	"sort"
)

// ToolManager holds a registry of all available tools.
type ToolManager struct {
	tools map[string]ToolExecutor
}

// NewToolManager returns an empty registry.
func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (tm *ToolManager) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	tm.tools[name] = tool
}

// Definitions returns all registered tool definitions, sorted by name so the
// request payload is stable.
func (tm *ToolManager) Definitions() []Tool {
	defs := make([]Tool, 0, len(tm.tools))
	for _, tool := range tm.tools {
		defs = append(defs, tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Function.Name < defs[j].Function.Name
	})
	return defs
}

// Execute runs a tool by name. An unregistered name is not an error: the
// model gets "Unknown function: {name}" back as ordinary tool output.
func (tm *ToolManager) Execute(ctx context.Context, name, arguments string) (string, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return fmt.Sprintf("Unknown function: %s", name), nil
	}
	return tool.Execute(ctx, arguments)
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.tools)
}
