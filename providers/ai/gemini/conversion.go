package gemini

import (
	"fmt"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// requestFromGeneric converts the neutral message list and config into a
// generateContentRequest. System messages leave the main sequence and land in
// systemInstruction (same concatenation rule as the Anthropic adapter);
// remaining roles collapse to "user" for user messages and "model" for
// everything else.
func requestFromGeneric(messages []ai.Message, config ai.RequestConfig) generateContentRequest {
	req := generateContentRequest{
		Contents: buildContents(messages),
		GenerationConfig: generationConfig{
			Temperature:     config.Temperature,
			TopP:            config.TopP,
			MaxOutputTokens: config.MaxTokens,
		},
	}

	if system := ai.SystemText(messages); system != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: system}},
		}
	}

	return req
}

// buildContents maps non-system messages to vendor content turns. Each
// message's content becomes a sequence of text parts; an image reference is
// degraded to a text placeholder embedding the reference.
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		if msg.Role == ai.RoleSystem {
			continue
		}

		role := "model"
		if msg.Role == ai.RoleUser {
			role = "user"
		}

		var parts []part
		if len(msg.Parts) > 0 {
			for _, p := range msg.Parts {
				switch p.Type {
				case ai.ContentTypeText:
					if p.Text != "" {
						parts = append(parts, part{Text: p.Text})
					}
				case ai.ContentTypeImage:
					if p.ImageURL != "" {
						parts = append(parts, part{Text: fmt.Sprintf("[image] %s", p.ImageURL)})
					}
				}
			}
		} else {
			parts = append(parts, part{Text: msg.Content})
		}

		contents = append(contents, content{Role: role, Parts: parts})
	}

	return contents
}

// responseToGeneric reads the first candidate's first content part into a
// ResponseChunk.
func responseToGeneric(resp generateContentResponse) ai.ResponseChunk {
	if len(resp.Candidates) == 0 {
		return ai.ResponseChunk{}
	}

	first := resp.Candidates[0]

	text := ""
	if len(first.Content.Parts) > 0 {
		text = first.Content.Parts[0].Text
	}

	return ai.ResponseChunk{
		Content:      text,
		FinishReason: first.FinishReason,
	}
}
