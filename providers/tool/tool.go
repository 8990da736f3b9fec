// Package tool binds strongly-typed Go functions to the vendor-neutral tool
// model. A [Tool] derives its parameter schema from its input type via
// reflection and parses model-produced argument text leniently, so sloppy
// JSON from a streaming reassembly still dispatches.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rreeqqwel/omni-agent-cli/core/parse"
	"github.com/Rreeqqwel/omni-agent-cli/internal/jsonschema"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// GenericTool abstracts over the concrete type parameters of [Tool] so tools
// can be stored and dispatched without knowing their input/output types.
type GenericTool interface {
	// Definition returns the metadata advertised to the model.
	Definition() ai.ToolDefinition

	// Call invokes the tool with raw argument text (typically JSON as
	// produced by the model) and returns a JSON-encoded result.
	Call(ctx context.Context, arguments string) (string, error)
}

// Tool is a typed, callable tool. I is the argument struct the model fills
// in; O is the result returned to it.
type Tool[I, O any] struct {
	Name        string
	Description string
	Function    func(ctx context.Context, input I) (O, error)
}

// Option configures a tool created via [New].
type Option func(*options)

type options struct {
	description string
}

// WithDescription sets the human-readable description surfaced to the model
// so it can decide when to invoke the tool.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// New constructs a Tool binding name to fn.
func New[I, O any](name string, fn func(ctx context.Context, input I) (O, error), opts ...Option) *Tool[I, O] {
	var configured options
	for _, opt := range opts {
		opt(&configured)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: configured.description,
		Function:    fn,
	}
}

// Definition implements [GenericTool]. The parameter schema is derived from
// I; a schema that fails to marshal is a programming error and yields an
// empty parameters object rather than a broken definition.
func (t *Tool[I, O]) Definition() ai.ToolDefinition {
	parameters, err := json.Marshal(jsonschema.FromType[I]())
	if err != nil {
		parameters = []byte(`{"type":"object"}`)
	}

	return ai.ToolDefinition{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  parameters,
	}
}

// Call implements [GenericTool]: parse the argument text into I (repairing
// almost-JSON when needed), run the function, and JSON-encode the result.
func (t *Tool[I, O]) Call(ctx context.Context, arguments string) (string, error) {
	input, err := parse.StringAs[I](arguments)
	if err != nil {
		return "", fmt.Errorf("tool %s: failed to parse arguments: %w", t.Name, err)
	}

	output, err := t.Function(ctx, input)
	if err != nil {
		return "", fmt.Errorf("tool %s: execution failed: %w", t.Name, err)
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("tool %s: failed to encode result: %w", t.Name, err)
	}

	return string(encoded), nil
}

// Definitions collects the wire definitions of a tool set, in order.
func Definitions(tools []GenericTool) []ai.ToolDefinition {
	definitions := make([]ai.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		definitions = append(definitions, t.Definition())
	}
	return definitions
}
