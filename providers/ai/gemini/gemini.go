package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	modelsEndpoint = "/v1beta/models"
)

const defaultName = "google"

// GeminiProvider implements [ai.Provider] for the Generative Language API.
// Use [New] to construct one.
type GeminiProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns a GeminiProvider targeting baseURL with the given key. An
// empty baseURL falls back to the canonical Google endpoint.
func New(baseURL, apiKey string) *GeminiProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		name:    defaultName,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// WithName assigns the caller's label for this endpoint and returns the
// provider so calls can be chained.
func (p *GeminiProvider) WithName(name string) *GeminiProvider {
	p.name = name
	return p
}

// WithHTTPClient replaces the default [http.Client]. Returns the provider so
// calls can be chained.
func (p *GeminiProvider) WithHTTPClient(client *http.Client) *GeminiProvider {
	p.client = client
	return p
}

// Name implements [ai.Provider].
func (p *GeminiProvider) Name() string {
	return p.name
}

// keyedURL appends the API key as the `key` query parameter. Google
// authenticates generateContent calls this way, not via headers.
func (p *GeminiProvider) keyedURL(path string) string {
	endpoint := p.baseURL + path
	if p.apiKey == "" {
		return endpoint
	}
	return endpoint + "?key=" + url.QueryEscape(p.apiKey)
}

// Chat implements [ai.Provider] with one POST to
// /v1beta/models/{model}:generateContent. The response text is read from the
// first candidate's first content part.
func (p *GeminiProvider) Chat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
	payload := requestFromGeneric(messages, config)
	path := fmt.Sprintf("%s/%s:generateContent", modelsEndpoint, config.Model)

	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](ctx, p.client, p.keyedURL(path), "", payload)
	if err != nil {
		return ai.ResponseChunk{}, err
	}

	if resp == nil {
		return ai.ResponseChunk{}, fmt.Errorf("empty response from generateContent: %s", httpResponse.Status)
	}

	return responseToGeneric(*resp), nil
}

// StreamChat implements [ai.Provider]. The vendor's incremental protocol is
// not exercised: the adapter runs one full Chat call and re-presents the
// result as a content chunk followed by a terminal chunk. Callers cannot tell
// the difference except by latency before the first chunk.
func (p *GeminiProvider) StreamChat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
	result, err := p.Chat(ctx, messages, config)
	if err != nil {
		return nil, err
	}

	return ai.NewSingleChunkStream(result), nil
}

// Close implements [ai.Provider]. Idempotent.
func (p *GeminiProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
