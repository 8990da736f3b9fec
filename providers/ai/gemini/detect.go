package gemini

import (
	"context"
	"net/http"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// Detect implements [ai.Provider] with a GET on /v1beta/models, keyed via the
// query parameter like every other call to this API. Never returns an error:
// a transport failure only degrades confidence.
func (p *GeminiProvider) Detect(ctx context.Context) ai.ProviderInfo {
	capabilities := ai.Capabilities{
		Chat:      true,
		Tools:     true,
		Vision:    true,
		JSONMode:  true,
		Streaming: true,
	}

	confidence := 0.6
	detectedBy := "probe"

	httpResponse, _, err := utils.DoGet(ctx, p.client, p.keyedURL(modelsEndpoint), "")
	switch {
	case err != nil:
		confidence = 0.4
		detectedBy = "probe:error"
	case httpResponse.StatusCode == http.StatusOK:
		confidence = 0.9
		detectedBy = "probe:/v1beta/models"
	case httpResponse.StatusCode == http.StatusUnauthorized || httpResponse.StatusCode == http.StatusForbidden:
		confidence = 0.7
		detectedBy = "probe:/v1beta/models_auth"
	}

	return ai.ProviderInfo{
		Name:         p.name,
		Capabilities: capabilities,
		Confidence:   confidence,
		DetectedBy:   detectedBy,
	}
}
