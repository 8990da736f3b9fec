package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per call.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name and duration.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the message count and finish reason. The
	// recommended default.
	LogLevelStandard

	// LogLevelVerbose adds the last message content and the response
	// content, each truncated.
	//
	// WARNING: verbose logging writes raw prompt and response text, which
	// may contain sensitive user data. Local debugging only.
	LogLevelVerbose
)

// NewLoggingMiddleware returns a Config emitting structured slog entries
// around every provider call. For streams the completion entry fires once
// the iterator is fully consumed or errors.
//
// logger must not be nil; pass slog.Default() when no custom logger is
// configured.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) Config {
	return Config{
		Chat:   buildChatLogging(logger, level),
		Stream: buildStreamLogging(logger, level),
	}
}

func buildChatLogging(logger *slog.Logger, level LogLevel) Middleware {
	return func(next ChatFunc) ChatFunc {
		return func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (ai.ResponseChunk, error) {
			logger.InfoContext(ctx, "llm chat", requestAttrs(messages, config, level)...)

			start := time.Now()
			response, err := next(ctx, messages, config)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm chat failed",
					slog.String("model", config.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return ai.ResponseChunk{}, err
			}

			logger.InfoContext(ctx, "llm chat completed", responseAttrs(config, response, elapsed, level)...)
			return response, nil
		}
	}
}

func buildStreamLogging(logger *slog.Logger, level LogLevel) StreamMiddleware {
	return func(next StreamFunc) StreamFunc {
		return func(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
			logger.InfoContext(ctx, "llm stream", requestAttrs(messages, config, level)...)

			start := time.Now()
			stream, err := next(ctx, messages, config)
			if err != nil {
				logger.ErrorContext(ctx, "llm stream failed",
					slog.String("model", config.Model),
					slog.Duration("duration", time.Since(start)),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			iteratorFunc := func(yield func(ai.ResponseChunk, error) bool) {
				chunks := 0
				for chunk, chunkErr := range stream.Iter() {
					if chunkErr != nil {
						logger.ErrorContext(ctx, "llm stream errored",
							slog.String("model", config.Model),
							slog.Duration("duration", time.Since(start)),
							slog.Int("chunks", chunks),
							slog.String("error", chunkErr.Error()),
						)
					} else {
						chunks++
					}
					if !yield(chunk, chunkErr) {
						return
					}
				}

				logger.InfoContext(ctx, "llm stream completed",
					slog.String("model", config.Model),
					slog.Duration("duration", time.Since(start)),
					slog.Int("chunks", chunks),
				)
			}

			return ai.NewChatStream(iteratorFunc), nil
		}
	}
}

func requestAttrs(messages []ai.Message, config ai.RequestConfig, level LogLevel) []any {
	attrs := []any{slog.String("model", config.Model)}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("messages", len(messages)))
	}
	if level >= LogLevelVerbose && len(messages) > 0 {
		last := messages[len(messages)-1]
		attrs = append(attrs, slog.String("last_message", utils.TruncateStringDefault(last.Content)))
	}

	return attrs
}

func responseAttrs(config ai.RequestConfig, response ai.ResponseChunk, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", config.Model),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs,
			slog.String("finish_reason", response.FinishReason),
			slog.Int("tool_calls", len(response.ToolCalls)),
		)
	}
	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("content", utils.TruncateStringDefault(response.Content)))
	}

	return attrs
}
