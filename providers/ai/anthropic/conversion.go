package anthropic

import "github.com/Rreeqqwel/omni-agent-cli/providers/ai"

// requestFromGeneric converts the neutral message list and config into a
// messagesRequest. System-role messages are pulled out of the sequence and
// concatenated (original order, newline-joined, trimmed) into the top-level
// system field; everything else passes through in order as {role, content}
// pairs.
func requestFromGeneric(messages []ai.Message, config ai.RequestConfig, stream bool) messagesRequest {
	maxTokens := config.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	req := messagesRequest{
		Model:       config.Model,
		Messages:    nonSystemMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: config.Temperature,
		System:      ai.SystemText(messages),
		Stream:      stream,
	}

	return req
}

// nonSystemMessages passes every non-system message through unchanged,
// preserving order and the string-or-parts content shape.
func nonSystemMessages(messages []ai.Message) []vendorMessage {
	out := make([]vendorMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == ai.RoleSystem {
			continue
		}

		converted := vendorMessage{Role: string(msg.Role)}
		if len(msg.Parts) > 0 {
			converted.Content = msg.Parts
		} else {
			converted.Content = msg.Content
		}
		out = append(out, converted)
	}
	return out
}

// responseToGeneric reads the first content block's text and the vendor
// stop_reason into a ResponseChunk.
func responseToGeneric(resp messagesResponse) ai.ResponseChunk {
	text := ""
	if len(resp.Content) > 0 {
		text = resp.Content[0].Text
	}

	return ai.ResponseChunk{
		Content:      text,
		FinishReason: resp.StopReason,
	}
}
