package openai

import "github.com/Rreeqqwel/omni-agent-cli/providers/ai"

// requestFromGeneric converts the neutral message list and config into a
// chatCompletionRequest. Unlike the Anthropic and Gemini conversions, system
// messages stay inline: the Chat Completions format accepts them as ordinary
// conversation entries.
func requestFromGeneric(messages []ai.Message, config ai.RequestConfig, stream bool) chatCompletionRequest {
	req := chatCompletionRequest{
		Model:       config.Model,
		Messages:    convertMessages(messages),
		Temperature: config.Temperature,
		TopP:        config.TopP,
		MaxTokens:   config.MaxTokens,
		Stream:      stream,
	}

	if tools := convertTools(config.Tools); len(tools) > 0 {
		req.Tools = tools
	}

	if config.JSONMode {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	return req
}

// convertMessages maps each generic message verbatim. Content passes through
// unchanged: the plain string shorthand or the ordered part sequence.
func convertMessages(messages []ai.Message) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		converted := chatMessage{
			Role:       string(msg.Role),
			Name:       msg.Name,
			ToolCallID: msg.ToolCallID,
		}
		if len(msg.Parts) > 0 {
			converted.Content = msg.Parts
		} else {
			converted.Content = msg.Content
		}
		out = append(out, converted)
	}
	return out
}

// convertTools wraps each definition in the {type:"function", function:...}
// envelope. Returns nil when no tools are configured so the field is omitted
// entirely.
func convertTools(tools []ai.ToolDefinition) []chatTool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]chatTool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, chatTool{
			Type: "function",
			Function: toolFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}
	return out
}

// responseToGeneric extracts the first choice into a ResponseChunk.
func responseToGeneric(resp chatCompletionResponse) ai.ResponseChunk {
	choice := resp.Choices[0]

	chunk := ai.ResponseChunk{
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
	}

	for _, toolCall := range choice.Message.ToolCalls {
		chunk.ToolCalls = append(chunk.ToolCalls, ai.ToolCall{
			ID:        toolCall.ID,
			Name:      toolCall.Function.Name,
			Arguments: toolCall.Function.Arguments,
		})
	}

	return chunk
}

// deltaToGeneric maps one streaming delta (plus its choice-level finish
// reason) to a ResponseChunk. Tool-call entries are mapped fragment-for-
// fragment; reassembly across chunks is the caller's concern.
func deltaToGeneric(choice streamChoice) ai.ResponseChunk {
	chunk := ai.ResponseChunk{
		Content:      choice.Delta.Content,
		FinishReason: choice.FinishReason,
	}

	for _, toolCall := range choice.Delta.ToolCalls {
		chunk.ToolCalls = append(chunk.ToolCalls, ai.ToolCall{
			ID:        toolCall.ID,
			Name:      toolCall.Function.Name,
			Arguments: toolCall.Function.Arguments,
		})
	}

	return chunk
}
