package cli

import (
	"fmt"

	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
)

func initCommand() *Command {
	return &Command{
		Name:    "init",
		Summary: "Create the config file if it does not exist",
		Usage:   "agent init",
		Run: func(args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("OK") + " Config ensured at " + path)
			return nil
		},
	}
}
