package cli

import (
	"context"

	"github.com/Rreeqqwel/omni-agent-cli/internal/config"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/anthropic"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/detect"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/gemini"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai/openai"
)

// buildProvider turns a stored profile into a concrete adapter. An explicit
// ProviderType on the profile wins; otherwise the endpoint is detected and
// the adapter chosen from the detection result. Anything that is not
// recognizably Anthropic or Gemini is treated as OpenAI-compatible, which
// is the dominant dialect among self-hosted and proxy endpoints.
func buildProvider(ctx context.Context, profile config.ProviderConfig) (ai.Provider, ai.ProviderInfo) {
	kind := profile.ProviderType
	var info ai.ProviderInfo
	if kind == "" {
		info = detect.Detect(ctx, profile.BaseURL, profile.APIKey)
		kind = info.Name
	}

	switch kind {
	case "anthropic":
		return anthropic.New(profile.BaseURL, profile.APIKey), info
	case "google", "gemini":
		return gemini.New(profile.BaseURL, profile.APIKey), info
	default:
		provider := openai.New(profile.BaseURL, profile.APIKey)
		if kind != "" && kind != "unknown" {
			provider = provider.WithName(kind)
		}
		return provider, info
	}
}
