package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
)

func providersCommand() *Command {
	return &Command{
		Name:    "providers",
		Summary: "List configured provider profiles",
		Usage:   "agent providers",
		Run: func(args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if len(cfg.Providers) == 0 {
				fmt.Println(dimStyle.Render("No provider profiles configured. Run 'agent config-add <name>'."))
				return nil
			}

			names := make([]string, 0, len(cfg.Providers))
			for name := range cfg.Providers {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println(titleStyle.Render("Provider profiles"))
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "  NAME\tBASE URL\tMODEL\tTYPE\tKEY")
			for _, name := range names {
				profile := cfg.Providers[name]
				marker := ""
				if name == cfg.DefaultProvider {
					marker = " *"
				}
				kind := profile.ProviderType
				if kind == "" {
					kind = "auto"
				}
				key := "-"
				if profile.APIKey != "" {
					key = "set"
				}
				fmt.Fprintf(tw, "  %s%s\t%s\t%s\t%s\t%s\n", name, marker, profile.BaseURL, profile.Model, kind, key)
			}
			tw.Flush()
			if cfg.DefaultProvider != "" {
				fmt.Println(dimStyle.Render("* default"))
			}
			return nil
		},
	}
}
