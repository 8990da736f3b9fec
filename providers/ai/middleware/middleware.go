// Package middleware wraps an [ai.Provider] with cross-cutting behavior:
// retries with exponential backoff, per-request deadlines, and structured
// request logging. Middlewares compose; [Wrap] applies them so the first
// config listed is the outermost layer.
package middleware

import (
	"context"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// ChatFunc is the signature of a one-shot chat call.
type ChatFunc func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error)

// StreamFunc is the signature of a streaming chat call.
type StreamFunc func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error)

// Middleware decorates a one-shot chat call.
type Middleware func(next ChatFunc) ChatFunc

// StreamMiddleware decorates a streaming chat call.
type StreamMiddleware func(next StreamFunc) StreamFunc

// Config pairs the two decorators of one concern. Either side may be nil
// when the concern does not apply to that call shape — retry, for instance,
// cannot transparently re-run a partially consumed stream.
type Config struct {
	Chat   Middleware
	Stream StreamMiddleware
}

// wrappedProvider layers middleware chains over an inner provider.
// Name, Detect, and Close delegate untouched.
type wrappedProvider struct {
	inner  ai.Provider
	chat   ChatFunc
	stream StreamFunc
}

// Wrap layers configs around provider. Ordering: the first config is the
// outermost, so Wrap(p, logging, retry) logs once per caller request while
// the retry layer re-invokes the provider inside it.
func Wrap(provider ai.Provider, configs ...Config) ai.Provider {
	chat := ChatFunc(provider.Chat)
	stream := StreamFunc(provider.StreamChat)

	for i := len(configs) - 1; i >= 0; i-- {
		if configs[i].Chat != nil {
			chat = configs[i].Chat(chat)
		}
		if configs[i].Stream != nil {
			stream = configs[i].Stream(stream)
		}
	}

	return &wrappedProvider{inner: provider, chat: chat, stream: stream}
}

func (p *wrappedProvider) Name() string {
	return p.inner.Name()
}

func (p *wrappedProvider) Chat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
	return p.chat(ctx, messages, config)
}

func (p *wrappedProvider) StreamChat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
	return p.stream(ctx, messages, config)
}

func (p *wrappedProvider) Detect(ctx context.Context) ai.ProviderInfo {
	return p.inner.Detect(ctx)
}

func (p *wrappedProvider) Close() error {
	return p.inner.Close()
}
