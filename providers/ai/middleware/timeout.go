package middleware

import (
	"context"
	"time"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// NewTimeoutMiddleware returns a Config enforcing a per-request deadline on
// both call shapes.
//
// For one-shot calls the context is wrapped with context.WithTimeout and
// canceled as soon as the call returns. For streaming calls the cancel is
// NOT deferred immediately: it fires when the stream's iterator finishes,
// errors, or is abandoned, so the deadline governs the whole lifetime of the
// stream rather than just the time to the first byte.
//
// A caller-supplied context with a shorter deadline wins, per normal context
// semantics.
func NewTimeoutMiddleware(timeout time.Duration) Config {
	return Config{
		Chat:   buildChatTimeout(timeout),
		Stream: buildStreamTimeout(timeout),
	}
}

func buildChatTimeout(timeout time.Duration) Middleware {
	return func(next ChatFunc) ChatFunc {
		return func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, messages, config)
		}
	}
}

func buildStreamTimeout(timeout time.Duration) StreamMiddleware {
	return func(next StreamFunc) StreamFunc {
		return func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)

			stream, err := next(ctx, messages, config)
			if err != nil {
				cancel()
				return nil, err
			}

			return wrapStreamWithCancel(stream, cancel), nil
		}
	}
}

// wrapStreamWithCancel re-wraps a stream so cancel runs once the iterator
// ends on any path, including an early break by the caller.
func wrapStreamWithCancel(stream *ai.ChatStream, cancel context.CancelFunc) *ai.ChatStream {
	iteratorFunc := func(yield func(ai.ResponseChunk, error) bool) {
		defer cancel()

		for chunk, err := range stream.Iter() {
			if !yield(chunk, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}

	return ai.NewChatStream(iteratorFunc)
}
