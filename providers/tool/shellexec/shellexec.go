// Package shellexec exposes the local shell runtime as a model-callable
// tool. The runtime's deny-list still applies: the model must set confirm to
// run a command the deny-list flags, which surfaces the decision in the
// transcript instead of hiding it.
package shellexec

import (
	"context"

	"github.com/Rreeqqwel/omni-agent-cli/internal/shell"
	"github.com/Rreeqqwel/omni-agent-cli/providers/tool"
)

// Input is the argument struct the model fills in.
type Input struct {
	Command string `json:"command" description:"The shell command line to execute"`
	Confirm bool   `json:"confirm,omitempty" description:"Set to true to confirm execution of a command flagged as dangerous"`
	Dir     string `json:"dir,omitempty" description:"Working directory for the command; defaults to the current directory"`
}

// Output mirrors shell.Result for the model.
type Output struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
}

// NewShellTool returns a [tool.GenericTool] running commands through the
// given runtime. Pass nil to use a confirmation-requiring default.
func NewShellTool(runtime *shell.Runtime) *tool.Tool[Input, Output] {
	if runtime == nil {
		runtime = shell.NewRuntime()
	}

	run := func(ctx context.Context, input Input) (Output, error) {
		result, err := runtime.Run(ctx, input.Command, input.Confirm, input.Dir)
		if err != nil {
			return Output{}, err
		}
		return Output{
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}, nil
	}

	return tool.New("RunCommand", run,
		tool.WithDescription("Executes a shell command on the local machine and returns its exit code, stdout, and stderr. Destructive commands (rm, sudo, dd, ...) are refused unless confirm is set."))
}
