package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/pflag"

	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/detect"
)

func doctorCommand() *Command {
	flags := pflag.NewFlagSet("doctor", pflag.ContinueOnError)
	timeout := flags.Duration("timeout", 10*time.Second, "per-profile probe deadline")

	return &Command{
		Name:    "doctor",
		Summary: "Probe every configured profile and report health",
		Usage:   "agent doctor",
		Flags:   flags,
		Run: func(args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", labelStyle.Render("Config:"), path)
			if len(cfg.Providers) == 0 {
				fmt.Println(dimStyle.Render("No profiles to check."))
				return nil
			}

			names := make([]string, 0, len(cfg.Providers))
			for name := range cfg.Providers {
				names = append(names, name)
			}
			sort.Strings(names)

			unhealthy := 0
			for _, name := range names {
				profile := cfg.Providers[name]

				ctx, cancel := context.WithTimeout(context.Background(), *timeout)
				info := detect.Detect(ctx, profile.BaseURL, profile.APIKey)
				cancel()

				status := successStyle.Render("ok")
				if info.Confidence < 0.5 {
					status = errorStyle.Render("unreachable or unrecognized")
					unhealthy++
				}
				fmt.Printf("  %s: %s (%s, confidence %.2f, via %s)\n",
					labelStyle.Render(name), status, info.Name, info.Confidence, info.DetectedBy)
			}

			if unhealthy > 0 {
				return fmt.Errorf("%d of %d profiles unhealthy", unhealthy, len(names))
			}
			fmt.Println(successStyle.Render("All profiles healthy."))
			return nil
		},
	}
}
