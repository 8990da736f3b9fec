package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// StreamChat implements [ai.Provider] with a stream=true POST to
// /chat/completions. The response body is a sequence of SSE "data:" lines;
// the literal [DONE] sentinel ends the stream.
//
// Resilience policy: a line that is not valid JSON is skipped, not fatal —
// partial frames and keep-alive noise must not kill the stream. Deltas
// carrying neither content nor tool calls are skipped without emitting a
// chunk. Tool-call deltas are yielded as raw fragments per network chunk,
// exactly as the vendor emitted them.
func (p *OpenAIProvider) StreamChat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
	payload := requestFromGeneric(messages, config, true)

	httpResponse, err := utils.DoPostStream(ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, payload)
	if err != nil {
		return nil, err
	}

	sseScanner := utils.NewSSEScanner(httpResponse.Body)

	iteratorFunc := func(yield func(ai.ResponseChunk, error) bool) {
		// Release the connection on every exit path, including an early
		// break by the caller.
		defer utils.CloseWithLog(httpResponse.Body)

		for {
			if ctx.Err() != nil {
				yield(ai.ResponseChunk{}, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if errors.Is(sseErr, io.EOF) {
				// Stream exhausted or [DONE] sentinel reached.
				return
			}
			if sseErr != nil {
				yield(ai.ResponseChunk{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			var chunk chatCompletionChunk
			if jsonErr := json.Unmarshal([]byte(payload), &chunk); jsonErr != nil {
				// Protocol noise; try the next line.
				continue
			}
			if len(chunk.Choices) == 0 {
				continue
			}

			choice := chunk.Choices[0]
			if choice.Delta.Content == "" && len(choice.Delta.ToolCalls) == 0 {
				// Empty delta, nothing to emit.
				continue
			}

			if !yield(deltaToGeneric(choice), nil) {
				return
			}
		}
	}

	return ai.NewChatStream(iteratorFunc), nil
}
