// Package cli implements the agent command surface: endpoint detection,
// provider profile management, diagnostics, chat, and local command
// execution.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one subcommand: a name, a pflag set, and a run function that
// receives the positional arguments left after flag parsing.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Flags   *pflag.FlagSet
	Run     func(args []string) error
}

// App is the root dispatcher.
type App struct {
	commands []*Command
}

// Root builds the application with every subcommand registered.
func Root() *App {
	return &App{
		commands: []*Command{
			initCommand(),
			detectCommand(),
			askCommand(),
			providersCommand(),
			configAddCommand(),
			doctorCommand(),
			runCommand(),
		},
	}
}

// Execute dispatches args (without the program name) to the matching
// subcommand. No arguments, "help", or an unknown name print usage.
func (app *App) Execute(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		app.printUsage()
		return nil
	}

	name := args[0]
	for _, command := range app.commands {
		if command.Name != name {
			continue
		}

		if command.Flags != nil {
			command.Flags.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: %s\n\nFlags:\n%s", command.Usage, command.Flags.FlagUsages())
			}
			if err := command.Flags.Parse(args[1:]); err != nil {
				return err
			}
			return command.Run(command.Flags.Args())
		}
		return command.Run(args[1:])
	}

	app.printUsage()
	return fmt.Errorf("unknown command: %s", name)
}

func (app *App) printUsage() {
	fmt.Println(titleStyle.Render("omni-agent") + " — universal multi-provider AI agent CLI")
	fmt.Println()
	fmt.Println("Commands:")

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	for _, command := range app.commands {
		fmt.Fprintf(tw, "  %s\t%s\n", command.Name, command.Summary)
	}
	tw.Flush()

	fmt.Println()
	fmt.Println("Run 'agent <command> --help' for command flags.")
}
