package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/detect"
)

func configAddCommand() *Command {
	flags := pflag.NewFlagSet("config-add", pflag.ContinueOnError)
	baseURL := flags.String("base-url", "", "provider base URL (required)")
	apiKey := flags.String("api-key", "", "API key for the endpoint")
	model := flags.String("model", "", "default model for this profile (required)")
	providerType := flags.String("type", "", "force the adapter type instead of auto-detecting (openai_compatible, anthropic, google)")
	setDefault := flags.Bool("default", false, "make this profile the default")

	return &Command{
		Name:    "config-add",
		Summary: "Add or update a provider profile",
		Usage:   "agent config-add <name> --base-url URL --model MODEL [--api-key KEY]",
		Flags:   flags,
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("config-add expects exactly one profile name")
			}
			name := args[0]
			if *baseURL == "" || *model == "" {
				return fmt.Errorf("--base-url and --model are required")
			}

			kind := *providerType
			if kind == "" {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				info := detect.Detect(ctx, *baseURL, *apiKey)
				fmt.Printf("Detected %s (confidence %.2f, via %s)\n", info.Name, info.Confidence, info.DetectedBy)
				if info.Confidence < 0.5 {
					fmt.Println(warnStyle.Render("Low confidence: profile will auto-detect on each use; pass --type to pin it."))
				} else {
					kind = info.Name
				}
			}

			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			cfg.Providers[name] = config.ProviderConfig{
				Name:         name,
				BaseURL:      *baseURL,
				APIKey:       *apiKey,
				Model:        *model,
				ProviderType: kind,
			}
			if *setDefault || cfg.DefaultProvider == "" {
				cfg.DefaultProvider = name
			}

			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("Saved profile %q to %s", name, path)))
			return nil
		},
	}
}
