// In file: internal/tools/types.go

// Package tools defines the function-calling surface of the chat: the schema
// types declared to the model, the calls the model sends back, and a registry
// that dispatches those calls to concrete tools.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool defines the schema for a function that can be described to an LLM.
type Tool struct {
	// Type is always "function".
	Type string `json:"type"`
	// Function holds the detailed definition of the function.
	Function Function `json:"function"`
}

// Function defines the name, description, and parameters of a callable tool.
type Function struct {
	// Name is the name the model uses to request the function (e.g., "get_weather").
	Name string `json:"name"`
	// Description is what the model reads to decide when to call the tool.
	Description string `json:"description"`
	// Parameters defines the arguments the function accepts as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
	// Strict asks the provider to generate arguments that match Parameters exactly.
	Strict bool `json:"strict,omitempty"`
}

// JSONSchema is a typed subset of JSON Schema, enough for tool parameters.
type JSONSchema struct {
	// Type is the data type of the node ("object", "string", "number", ...).
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties describes the members of an object node.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the mandatory members of an object node.
	Required []string `json:"required,omitempty"`
	// AdditionalProperties is a pointer so "false" survives omitempty.
	// Strict mode requires it to be false on every object node.
	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

// ToolCall represents a request from the LLM to execute a specific tool.
type ToolCall struct {
	// ID correlates the call with the tool-result turn that answers it.
	ID string `json:"id"`
	// Type is always "function".
	Type string `json:"type"`
	// Function contains the name and arguments for the requested function.
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the name and arguments of a function call requested by the LLM.
type ToolCallFunction struct {
	// Name is the name of the function the LLM has decided to call.
	Name string `json:"name"`
	// Arguments is the JSON-encoded argument object.
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a Tool of type "function".
func NewFunctionTool(name, description string, parameters JSONSchema, strict bool) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
			Strict:      strict,
		},
	}
}

// Bool returns a pointer to b, for optional schema flags.
func Bool(b bool) *bool {
	return &b
}
