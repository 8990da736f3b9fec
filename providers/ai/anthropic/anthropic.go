package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

const (
	defaultBaseURL = "https://api.anthropic.com"

	// messagesEndpoint is fixed: Anthropic versions the path itself, so the
	// /v1 segment is part of the endpoint rather than the base URL.
	messagesEndpoint = "/v1/messages"

	// anthropicVersion pins the wire format independently of the URL.
	anthropicVersion = "2023-06-01"

	// defaultMaxTokens is applied when the caller requested no limit;
	// Anthropic requires max_tokens on every request.
	defaultMaxTokens = 1024
)

const defaultName = "anthropic"

// AnthropicProvider implements [ai.Provider] for the Messages API. Use [New]
// to construct one.
type AnthropicProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an AnthropicProvider targeting baseURL with the given key. An
// empty baseURL falls back to the canonical Anthropic endpoint.
func New(baseURL, apiKey string) *AnthropicProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &AnthropicProvider{
		name:    defaultName,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// WithName assigns the caller's label for this endpoint and returns the
// provider so calls can be chained.
func (p *AnthropicProvider) WithName(name string) *AnthropicProvider {
	p.name = name
	return p
}

// WithHTTPClient replaces the default [http.Client]. Returns the provider so
// calls can be chained.
func (p *AnthropicProvider) WithHTTPClient(client *http.Client) *AnthropicProvider {
	p.client = client
	return p
}

// Name implements [ai.Provider].
func (p *AnthropicProvider) Name() string {
	return p.name
}

// buildHeaders constructs the headers every Messages request needs. The
// credential travels in x-api-key (no Bearer token), anthropic-version pins
// the protocol revision.
func (p *AnthropicProvider) buildHeaders() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: p.apiKey},
		{Key: "anthropic-version", Value: anthropicVersion},
		{Key: "content-type", Value: "application/json"},
	}
}

// Chat implements [ai.Provider] with one non-streaming POST to /v1/messages.
// Only the first content block's text is read; the vendor stop_reason maps
// straight to FinishReason.
func (p *AnthropicProvider) Chat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
	payload := requestFromGeneric(messages, config, false)

	// Empty apiKey argument so DoPostSync does not inject a Bearer token;
	// authentication happens via x-api-key in the headers.
	httpResponse, resp, err := utils.DoPostSync[messagesResponse](ctx, p.client, p.baseURL+messagesEndpoint, "", payload, p.buildHeaders()...)
	if err != nil {
		return ai.ResponseChunk{}, err
	}

	if resp == nil {
		return ai.ResponseChunk{}, fmt.Errorf("empty response from messages endpoint: %s", httpResponse.Status)
	}

	return responseToGeneric(*resp), nil
}

// Close implements [ai.Provider]. Idempotent.
func (p *AnthropicProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
