package openai

import (
	"context"
	"net/http"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// Detect implements [ai.Provider] with a GET on /models, the cheap
// introspection endpoint every Chat Completions clone exposes. The status
// code grades confidence: a 200 is near-certain, a 401/403 still proves the
// endpoint exists but the key is wrong, and a transport failure only degrades
// the estimate — it is never surfaced as an error.
func (p *OpenAIProvider) Detect(ctx context.Context) ai.ProviderInfo {
	capabilities := ai.Capabilities{
		Chat:      true,
		Tools:     true,
		JSONMode:  true,
		Streaming: true,
	}

	confidence := 0.6
	detectedBy := "probe"

	httpResponse, _, err := utils.DoGet(ctx, p.client, p.baseURL+modelsEndpoint, p.apiKey)
	switch {
	case err != nil:
		confidence = 0.4
		detectedBy = "probe:error"
	case httpResponse.StatusCode == http.StatusOK:
		confidence = 0.9
		detectedBy = "probe:/models"
	case httpResponse.StatusCode == http.StatusUnauthorized || httpResponse.StatusCode == http.StatusForbidden:
		confidence = 0.7
		detectedBy = "probe:/models_auth"
	}

	return ai.ProviderInfo{
		Name:         p.name,
		Capabilities: capabilities,
		Confidence:   confidence,
		DetectedBy:   detectedBy,
	}
}
