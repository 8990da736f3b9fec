package middleware

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// RetryConfig tunes the retry middleware. Zero values are replaced with the
// defaults documented per field when [NewRetryMiddleware] is called.
type RetryConfig struct {
	// MaxRetries is the number of retry attempts after the first failure,
	// so 3 means at most 4 provider calls. Default: 3.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps the computed backoff. Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor is the exponential growth multiplier:
	// backoff = min(InitialBackoff * BackoffFactor^attempt, MaxBackoff).
	// Default: 2.0.
	BackoffFactor float64

	// JitterFraction adds random noise in [0, JitterFraction*backoff] to
	// avoid thundering-herd retries. Default: 0.1.
	JitterFraction float64

	// RetryableFunc reports whether an error should trigger a retry. The
	// default retries transient HTTP statuses (429, 500, 502, 503, 529) by
	// matching the status code in the error text, which is where provider
	// errors carry it.
	RetryableFunc func(error) bool
}

func defaultRetryableFunc(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, code := range []string{"429", "500", "502", "503", "529"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

func applyRetryDefaults(config *RetryConfig) {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}
	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}
	if config.JitterFraction == 0 {
		config.JitterFraction = 0.1
	}
	if config.RetryableFunc == nil {
		config.RetryableFunc = defaultRetryableFunc
	}
}

// computeBackoff returns the delay before retry number attempt (0-indexed).
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	base := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	if base > float64(config.MaxBackoff) {
		base = float64(config.MaxBackoff)
	}

	jitter := base * config.JitterFraction * rand.Float64()
	return time.Duration(base + jitter)
}

// NewRetryMiddleware returns a Config that retries failed one-shot chat
// calls. The Stream side is nil: a partially consumed stream cannot be
// transparently re-run.
//
// On exhaustion the returned error wraps both [ErrRetryExhausted] and the
// last provider error.
func NewRetryMiddleware(config RetryConfig) Config {
	applyRetryDefaults(&config)

	chatMiddleware := Middleware(func(next ChatFunc) ChatFunc {
		return func(ctx context.Context, messages []ai.Message, requestConfig ai.RequestConfig) (ai.ResponseChunk, error) {
			var lastErr error

			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					backoff := computeBackoff(config, attempt-1)
					select {
					case <-ctx.Done():
						return ai.ResponseChunk{}, ctx.Err()
					case <-time.After(backoff):
					}
				}

				response, err := next(ctx, messages, requestConfig)
				if err == nil {
					return response, nil
				}

				lastErr = err
				if !config.RetryableFunc(err) {
					return ai.ResponseChunk{}, err
				}
			}

			return ai.ResponseChunk{}, fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, config.MaxRetries, lastErr)
		}
	})

	return Config{Chat: chatMiddleware}
}
