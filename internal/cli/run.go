package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Rreeqqwel/omni-agent-cli/internal/shell"
)

func runCommand() *Command {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	confirm := flags.BoolP("yes", "y", false, "confirm execution of commands flagged as dangerous")
	dir := flags.String("dir", "", "working directory for the command")

	return &Command{
		Name:    "run",
		Summary: "Execute a local shell command through the agent runtime",
		Usage:   "agent run <command...> [--yes]",
		Flags:   flags,
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("run expects a command")
			}
			command := strings.Join(args, " ")

			runtime := shell.NewRuntime()
			if runtime.IsDangerous(command) && !*confirm {
				fmt.Println(warnStyle.Render("Command looks dangerous; re-run with --yes to confirm."))
				return fmt.Errorf("refused: %s", command)
			}

			result, err := runtime.Run(context.Background(), command, *confirm, *dir)
			if err != nil {
				return err
			}

			if result.Stdout != "" {
				fmt.Print(result.Stdout)
			}
			if result.Stderr != "" {
				fmt.Print(dimStyle.Render(result.Stderr))
			}
			if result.ExitCode != 0 {
				return fmt.Errorf("command exited with code %d", result.ExitCode)
			}
			return nil
		},
	}
}
