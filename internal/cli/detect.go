package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/detect"
)

func detectCommand() *Command {
	flags := pflag.NewFlagSet("detect", pflag.ContinueOnError)
	apiKey := flags.String("api-key", "", "API key to use for authenticated probes")
	timeout := flags.Duration("timeout", 15*time.Second, "overall detection deadline")

	return &Command{
		Name:    "detect",
		Summary: "Identify the provider behind a base URL",
		Usage:   "agent detect <base-url> [--api-key KEY]",
		Flags:   flags,
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("detect expects exactly one base URL")
			}

			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()

			info := detect.Detect(ctx, args[0], *apiKey)

			fmt.Println(titleStyle.Render("Detection result"))
			fmt.Printf("%s %s\n", labelStyle.Render("Provider:"), info.Name)
			fmt.Printf("%s %.2f\n", labelStyle.Render("Confidence:"), info.Confidence)
			fmt.Printf("%s %s\n", labelStyle.Render("Detected by:"), info.DetectedBy)
			fmt.Printf("%s %s\n", labelStyle.Render("Capabilities:"), formatCapabilities(info.Capabilities))

			if info.Confidence < 0.5 {
				fmt.Println(warnStyle.Render("Low confidence: consider setting the provider type explicitly."))
			}
			return nil
		},
	}
}
