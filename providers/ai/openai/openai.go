package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

const (
	defaultBaseURL = "https://api.openai.com"

	chatCompletionsEndpoint = "/chat/completions"
	modelsEndpoint          = "/models"
)

// defaultName is the provider identifier when the caller assigns none.
const defaultName = "openai_compatible"

// OpenAIProvider implements [ai.Provider] for OpenAI-style Chat Completions
// endpoints. Use [New] to construct one; the base URL is normalized to end in
// the /v1 version segment so both "https://host" and "https://host/v1" work.
type OpenAIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an OpenAIProvider targeting baseURL with the given key. An
// empty baseURL falls back to the canonical OpenAI endpoint.
func New(baseURL, apiKey string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		name:    defaultName,
		apiKey:  apiKey,
		baseURL: normalizeBaseURL(baseURL),
		client:  &http.Client{},
	}
}

// normalizeBaseURL trims a trailing slash and appends the /v1 version segment
// unless the URL already carries it.
func normalizeBaseURL(baseURL string) string {
	url := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(url, "/v1") {
		url += "/v1"
	}
	return url
}

// WithName assigns the caller's label for this endpoint and returns the
// provider so calls can be chained.
func (p *OpenAIProvider) WithName(name string) *OpenAIProvider {
	p.name = name
	return p
}

// WithHTTPClient replaces the default [http.Client], e.g. to set timeouts or
// inject a test transport. Returns the provider so calls can be chained.
func (p *OpenAIProvider) WithHTTPClient(client *http.Client) *OpenAIProvider {
	p.client = client
	return p
}

// Name implements [ai.Provider].
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Chat implements [ai.Provider] with one non-streaming POST to
// /chat/completions. The first choice's message is extracted; tool-call
// entries map to [ai.ToolCall] with their raw argument text.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
	payload := requestFromGeneric(messages, config, false)

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, payload)
	if err != nil {
		return ai.ResponseChunk{}, err
	}

	if resp == nil || len(resp.Choices) == 0 {
		return ai.ResponseChunk{}, fmt.Errorf("no choices in response: %s", httpResponse.Status)
	}

	return responseToGeneric(*resp), nil
}

// Close implements [ai.Provider]. Idempotent.
func (p *OpenAIProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
