package anthropic

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
// /v1/messages. Each SSE payload is a JSON object discriminated by its
// "type" field: content_block_delta events with text yield a content-only
// chunk, message_stop yields one terminal chunk with finish reason "stop"
// and ends the stream, everything else (message_start, ping, block
// boundaries) is ignored. Payloads that fail to parse as JSON are skipped.
func (p *AnthropicProvider) StreamChat(ctx context.Context, messages []ai.Message, config ai.RequestConfig) (*ai.ChatStream, error) {
	payload := requestFromGeneric(messages, config, true)

	httpResponse, err := utils.DoPostStream(ctx, p.client, p.baseURL+messagesEndpoint, "", payload, p.buildHeaders()...)
	if err != nil {
		return nil, err
	}

	sseScanner := utils.NewSSEScanner(httpResponse.Body)

	iteratorFunc := func(yield func(ai.ResponseChunk, error) bool) {
		defer utils.CloseWithLog(httpResponse.Body)

		for {
			if ctx.Err() != nil {
				yield(ai.ResponseChunk{}, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if errors.Is(sseErr, io.EOF) {
				return
			}
			if sseErr != nil {
				yield(ai.ResponseChunk{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			var event streamEvent
			if jsonErr := json.Unmarshal([]byte(payload), &event); jsonErr != nil {
				continue
			}

			switch event.Type {
			case "content_block_delta":
				if event.Delta != nil && event.Delta.Text != "" {
					if !yield(ai.ResponseChunk{Content: event.Delta.Text}, nil) {
						return
					}
				}

			case "message_stop":
				yield(ai.ResponseChunk{FinishReason: "stop"}, nil)
				return
			}
		}
	}

	return ai.NewChatStream(iteratorFunc), nil
}
