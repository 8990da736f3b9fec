// Package agent runs the chat/tool-execution loop: send the conversation,
// execute whatever tools the model requested, feed the results back, and
// repeat until the model answers without tool calls or the iteration cap is
// reached.
package agent

import (
	"context"
	"fmt"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
	"github.com/Rreeqqwel/omni-agent-cli/providers/memory"
	"github.com/Rreeqqwel/omni-agent-cli/providers/tool"
)

// defaultMaxIterations caps the number of chat rounds; a model stuck in a
// tool loop terminates instead of burning tokens forever.
const defaultMaxIterations = 8

// ErrMaxIterations is returned when the loop cap is reached before the model
// produced a final answer.
var ErrMaxIterations = fmt.Errorf("agent reached the maximum number of tool iterations")

// Runner drives the loop for one provider and tool set. The tools slice
// preserves constructor order so the definitions advertised to the model are
// stable across requests; the index serves dispatch by name.
type Runner struct {
	provider      ai.Provider
	tools         []tool.GenericTool
	toolIndex     map[string]tool.GenericTool
	history       memory.Store
	maxIterations int
}

// Option configures a [Runner].
type Option func(*Runner)

// WithMaxIterations overrides the default iteration cap.
func WithMaxIterations(max int) Option {
	return func(r *Runner) {
		if max > 0 {
			r.maxIterations = max
		}
	}
}

// WithHistory attaches a conversation store. Each Run seeds its transcript
// from the store and, on success, appends the new turns back, so successive
// runs continue the same session.
func WithHistory(store memory.Store) Option {
	return func(r *Runner) {
		r.history = store
	}
}

// New builds a Runner. The tool definitions are injected into every request
// config the loop sends, so callers pass tools here once instead of wiring
// them into the config themselves.
func New(provider ai.Provider, tools []tool.GenericTool, opts ...Option) *Runner {
	runner := &Runner{
		provider:      provider,
		tools:         tools,
		toolIndex:     make(map[string]tool.GenericTool, len(tools)),
		maxIterations: defaultMaxIterations,
	}
	for _, t := range tools {
		runner.toolIndex[t.Definition().Name] = t
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run executes the loop starting from messages and returns the model's final
// response plus the full transcript, including the assistant turns and tool
// results appended along the way. When a history store is attached, the
// transcript is seeded from it and the new turns are persisted on success.
// A tool that fails does not abort the loop:
// its error text goes back to the model as the tool result, so the model can
// recover or re-plan.
func (r *Runner) Run(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, []ai.Message, error) {
	var transcript []ai.Message
	seeded := 0
	if r.history != nil {
		transcript = r.history.Messages()
		seeded = len(transcript)
	}
	transcript = append(transcript, messages...)

	config.Tools = tool.Definitions(r.tools)

	for iteration := 0; iteration < r.maxIterations; iteration++ {
		response, err := r.provider.Chat(ctx, transcript, config)
		if err != nil {
			return ai.ResponseChunk{}, transcript, err
		}

		if response.Content != "" {
			transcript = append(transcript, ai.Message{Role: ai.RoleAssistant, Content: response.Content})
		}

		if len(response.ToolCalls) == 0 {
			if r.history != nil {
				r.history.Append(transcript[seeded:]...)
			}
			return response, transcript, nil
		}

		for _, call := range response.ToolCalls {
			transcript = append(transcript, ai.Message{
				Role:       ai.RoleTool,
				Name:       call.Name,
				ToolCallID: call.ID,
				Content:    r.execute(ctx, call),
			})
		}
	}

	return ai.ResponseChunk{}, transcript, ErrMaxIterations
}

// execute dispatches one tool call. Unknown tools and execution failures
// both produce an error string for the transcript.
func (r *Runner) execute(ctx context.Context, call ai.ToolCall) string {
	requested, ok := r.toolIndex[call.Name]
	if !ok {
		return fmt.Sprintf("error: unknown tool %q", call.Name)
	}

	output, err := requested.Call(ctx, call.Arguments)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return output
}
