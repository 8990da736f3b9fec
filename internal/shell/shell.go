// Package shell runs local commands with a small safety net: a static
// deny-list of destructive first tokens that require explicit confirmation
// before execution. This is a safe default, not a sandbox.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// dangerous is the deny-list of command names that are refused without
// confirmation. Checked against the first token of the command line.
var dangerous = map[string]bool{
	"rm":       true,
	"sudo":     true,
	"dd":       true,
	"mkfs":     true,
	"shutdown": true,
	"reboot":   true,
	"chmod":    true,
	"chown":    true,
}

// Result captures one command execution.
type Result struct {
	Command  string `json:"command"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Runtime executes shell commands. With RequireConfirm set (the default via
// [NewRuntime]), commands whose first token is on the deny-list return an
// error unless the caller passes confirm=true.
type Runtime struct {
	RequireConfirm bool
}

// NewRuntime returns a Runtime that requires confirmation for dangerous
// commands.
func NewRuntime() *Runtime {
	return &Runtime{RequireConfirm: true}
}

// IsDangerous reports whether command's first token is on the deny-list. A
// command that cannot be tokenized at all is treated as dangerous.
func (r *Runtime) IsDangerous(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return true
	}
	return dangerous[fields[0]]
}

// Run executes command through `sh -c`, capturing stdout, stderr, and the
// exit code. dir sets the working directory when non-empty. A non-zero exit
// is reported through Result.ExitCode, not as an error; errors are reserved
// for refusal and for failures to start the process at all.
func (r *Runtime) Run(ctx context.Context, command string, confirm bool, dir string) (Result, error) {
	if r.RequireConfirm && r.IsDangerous(command) && !confirm {
		return Result{}, fmt.Errorf("refusing to run potentially dangerous command without confirmation: %s", command)
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran (sh missing, context cancelled before
			// start, ...); there is no meaningful result to report.
			return Result{}, fmt.Errorf("failed to run command: %w", err)
		}
	}

	return Result{
		Command:  command,
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
