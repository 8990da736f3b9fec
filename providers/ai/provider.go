package ai

import "context"

// Provider is the uniform contract every protocol adapter satisfies. One
// interface, three concrete implementations (openai, anthropic, gemini),
// selected at construction time by the caller or by the detect package.
//
// Each adapter owns exactly one underlying HTTP client. The client is the
// unit of shared resource: two concurrent streaming reads on one adapter
// would contend for it, so drive an adapter from a single logical flow at a
// time. No adapter retries, rate-limits, or caches — a single failed attempt
// surfaces as a single failure.
type Provider interface {
	// Name returns the stable identifier for the configured endpoint. This
	// is the label the caller assigned (or the detector inferred), not
	// necessarily the vendor's own name.
	Name() string

	// Chat performs one non-streaming round trip. It returns an error when
	// the HTTP layer answers with a non-2xx status (carrying status and
	// body) or when the response cannot be parsed into a ResponseChunk.
	Chat(ctx context.Context, messages []Message, config RequestConfig) (ResponseChunk, error)

	// StreamChat performs a streaming round trip and returns a lazy, finite,
	// non-restartable sequence of partial chunks. Pre-stream failures (bad
	// request, non-2xx, transport) are returned as an error; mid-stream
	// failures come through the iterator. Chunks are delivered in exact wire
	// order and the underlying connection is released on completion, error,
	// or early break out of the iteration.
	StreamChat(ctx context.Context, messages []Message, config RequestConfig) (*ChatStream, error)

	// Detect performs a cheap live check against the already configured
	// endpoint and returns a capability/confidence estimate. It never
	// fails: network trouble degrades confidence instead of raising.
	Detect(ctx context.Context) ProviderInfo

	// Close releases the adapter's HTTP client resources. It is idempotent
	// and safe to defer immediately after construction.
	Close() error
}
