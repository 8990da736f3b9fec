package anthropic

import (
	"context"
	"net/http"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// fingerprintRequest is a deliberately invalid Messages request (bogus model,
// zero messages) used solely to observe the shape of the resulting error.
type fingerprintRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []vendorMessage `json:"messages"`
}

// Detect implements [ai.Provider]. Anthropic exposes no universally cheap
// introspection endpoint, so the adapter sends a minimal invalid request and
// fingerprints the status code: a 400/401/403 means the endpoint exists and
// speaks the expected error surface. This is a classification probe, not a
// functional call, and it never returns an error — transport failure only
// degrades confidence.
func (p *AnthropicProvider) Detect(ctx context.Context) ai.ProviderInfo {
	capabilities := ai.Capabilities{
		Chat:      true,
		Tools:     true,
		Vision:    true,
		Streaming: true,
	}

	confidence := 0.6
	detectedBy := "probe"

	probe := fingerprintRequest{
		Model:     "invalid",
		MaxTokens: 1,
		Messages:  []vendorMessage{},
	}

	// The probe is expected to fail; only the response status matters. A nil
	// response means the request never reached the endpoint.
	httpResponse, _, _ := utils.DoPostSync[messagesResponse](ctx, p.client, p.baseURL+messagesEndpoint, "", probe, p.buildHeaders()...)
	switch {
	case httpResponse == nil:
		confidence = 0.4
		detectedBy = "probe:error"
	case httpResponse.StatusCode == http.StatusBadRequest,
		httpResponse.StatusCode == http.StatusUnauthorized,
		httpResponse.StatusCode == http.StatusForbidden:
		confidence = 0.8
		detectedBy = "probe:/v1/messages"
	}

	return ai.ProviderInfo{
		Name:         p.name,
		Capabilities: capabilities,
		Confidence:   confidence,
		DetectedBy:   detectedBy,
	}
}
