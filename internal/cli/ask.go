package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/Rreeqqwel/omni-agent-cli/core/agent"
	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
	"github.com/Rreeqqwel/omni-agent-cli/internal/shell"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/middleware"
	"github.com/Rreeqqwel/omni-agent-cli/providers/tool"
	"github.com/Rreeqqwel/omni-agent-cli/providers/tool/shellexec"
	"github.com/Rreeqqwel/omni-agent-cli/providers/tool/webfetch"
)

// requestTimeout bounds one chat round, including the full lifetime of a
// streamed response.
const requestTimeout = 2 * time.Minute

func askCommand() *Command {
	flags := pflag.NewFlagSet("ask", pflag.ContinueOnError)
	profileName := flags.StringP("provider", "p", "", "provider profile to use (default: configured default)")
	model := flags.StringP("model", "m", "", "override the profile's model")
	system := flags.StringP("system", "s", "", "system prompt")
	stream := flags.Bool("stream", true, "stream the response token by token")
	jsonMode := flags.Bool("json", false, "request a JSON object response")
	withTools := flags.Bool("tools", false, "let the model run the shell and web-fetch tools")
	verbose := flags.BoolP("verbose", "v", false, "log every provider call")

	return &Command{
		Name:    "ask",
		Summary: "Send a prompt to a configured provider",
		Usage:   "agent ask <prompt> [--provider NAME] [--model MODEL] [--tools]",
		Flags:   flags,
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("ask expects a prompt")
			}
			prompt := strings.Join(args, " ")

			profile, err := resolveProfile(*profileName)
			if err != nil {
				return err
			}

			ctx := context.Background()
			provider, _ := buildProvider(ctx, profile)
			defer provider.Close()
			provider = wrapProvider(provider, *verbose)

			requestConfig := ai.NewRequestConfig(profile.Model)
			if *model != "" {
				requestConfig.Model = *model
			}
			requestConfig.JSONMode = *jsonMode

			var messages []ai.Message
			if *system != "" {
				messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: *system})
			}
			messages = append(messages, ai.Message{Role: ai.RoleUser, Content: prompt})

			if *withTools {
				return runWithTools(ctx, provider, messages, requestConfig)
			}

			if !*stream {
				result, err := provider.Chat(ctx, messages, requestConfig)
				if err != nil {
					return fmt.Errorf("chat failed: %w", err)
				}
				fmt.Println(result.Content)
				printToolCalls(result.ToolCalls)
				return nil
			}

			chatStream, err := provider.StreamChat(ctx, messages, requestConfig)
			if err != nil {
				return fmt.Errorf("chat failed: %w", err)
			}
			var toolCalls []ai.ToolCall
			for chunk, err := range chatStream.Iter() {
				if err != nil {
					return fmt.Errorf("stream failed: %w", err)
				}
				fmt.Print(chunk.Content)
				toolCalls = append(toolCalls, chunk.ToolCalls...)
			}
			fmt.Println()
			printToolCalls(toolCalls)
			return nil
		},
	}
}

// wrapProvider layers the standard middleware stack: logging outermost (only
// when verbose), then retry, then the per-request timeout closest to the
// wire.
func wrapProvider(provider ai.Provider, verbose bool) ai.Provider {
	configs := []middleware.Config{
		middleware.NewRetryMiddleware(middleware.RetryConfig{}),
		middleware.NewTimeoutMiddleware(requestTimeout),
	}
	if verbose {
		configs = append([]middleware.Config{
			middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
		}, configs...)
	}
	return middleware.Wrap(provider, configs...)
}

// runWithTools hands the conversation to the agent loop, which executes tool
// calls and feeds results back until the model answers.
func runWithTools(ctx context.Context, provider ai.Provider, messages []ai.Message, requestConfig ai.RequestConfig) error {
	tools := []tool.GenericTool{
		shellexec.NewShellTool(shell.NewRuntime()),
		webfetch.NewWebFetchTool(),
	}

	runner := agent.New(provider, tools)
	response, transcript, err := runner.Run(ctx, messages, requestConfig)
	if err != nil {
		return fmt.Errorf("agent run failed: %w", err)
	}

	for _, msg := range transcript {
		if msg.Role == ai.RoleTool {
			fmt.Println(dimStyle.Render(fmt.Sprintf("[%s] %s", msg.Name, msg.Content)))
		}
	}
	fmt.Println(response.Content)
	return nil
}

func printToolCalls(calls []ai.ToolCall) {
	for _, call := range calls {
		fmt.Println(dimStyle.Render(fmt.Sprintf("tool call: %s(%s)", call.Name, call.Arguments)))
	}
}

// resolveProfile loads the config store and returns the named profile, or
// the default one when name is empty.
func resolveProfile(name string) (config.ProviderConfig, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.ProviderConfig{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.ProviderConfig{}, err
	}

	if name == "" {
		name = cfg.DefaultProvider
	}
	if name == "" {
		return config.ProviderConfig{}, fmt.Errorf("no provider profile selected: run 'agent config-add' first")
	}

	profile, ok := cfg.Providers[name]
	if !ok {
		return config.ProviderConfig{}, fmt.Errorf("unknown provider profile %q", name)
	}
	return profile, nil
}
