package ai

import (
	"encoding/json"
	"strings"
)

// Role identifies the author of a [Message]. The set is closed; adapters
// switch over it exhaustively at their translation boundary.
type Role string

const (
	RoleSystem    Role = "system"    // System instructions
	RoleUser      Role = "user"      // End-user message
	RoleAssistant Role = "assistant" // Model response
	RoleTool      Role = "tool"      // Tool/function output
)

// ContentType discriminates the variants of a [ContentPart].
type ContentType string

const (
	// ContentTypeText is a plain text fragment.
	ContentTypeText ContentType = "text"
	// ContentTypeImage is an opaque image reference (URL or identifier).
	ContentTypeImage ContentType = "image_url"
)

// ContentPart is one typed fragment of mixed-modality message content.
// Exactly one of Text or ImageURL is meaningful, selected by Type.
type ContentPart struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
}

// Message is a single conversation entry. Content carries the common
// plain-text shorthand; when Parts is non-empty it takes precedence and the
// message is treated as an ordered sequence of [ContentPart] values.
//
// ToolCallID is only meaningful when Role is [RoleTool]; Name is a free-form
// disambiguator for multi-participant exchanges.
type Message struct {
	Role       Role          `json:"role"`
	Content    string        `json:"content,omitempty"`
	Parts      []ContentPart `json:"parts,omitempty"`
	Name       string        `json:"name,omitempty"`
	ToolCallID string        `json:"tool_call_id,omitempty"`
}

// ToolDefinition describes a tool the model may invoke. Parameters is an
// open-ended JSON Schema treated as opaque data and passed through to the
// vendor unchanged.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// ToolCall is a model-requested tool invocation. Arguments is the raw
// argument text (typically JSON) exactly as the vendor produced it; schemas
// are vendor/tool-defined so no parsing happens here. During streaming a
// ToolCall may be a partial fragment, see [ChatStream].
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// RequestConfig carries per-request generation settings. Use
// [NewRequestConfig] to get the standard defaults; a zero MaxTokens means
// "not requested" and lets each vendor apply its own default.
type RequestConfig struct {
	Model       string           `json:"model"`
	Temperature float64          `json:"temperature"`
	TopP        float64          `json:"top_p"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Stream      bool             `json:"stream,omitempty"`
	JSONMode    bool             `json:"json_mode,omitempty"`
	Tools       []ToolDefinition `json:"tools,omitempty"`
}

// NewRequestConfig returns a RequestConfig for model with the default
// sampling settings (temperature 0.7, top_p 1.0).
func NewRequestConfig(model string) RequestConfig {
	return RequestConfig{
		Model:       model,
		Temperature: 0.7,
		TopP:        1.0,
	}
}

// ResponseChunk is the unit of model output: the single terminal result of a
// one-shot [Provider.Chat] call, and each element of a [ChatStream]. Zero
// values mean "absent" — an entirely zero chunk is valid and carries no new
// information beyond advancing the stream.
type ResponseChunk struct {
	Content      string     `json:"content,omitempty"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
}

// Empty reports whether the chunk carries no content, tool calls, or finish
// reason.
func (c ResponseChunk) Empty() bool {
	return c.Content == "" && len(c.ToolCalls) == 0 && c.FinishReason == ""
}

// Capabilities is the set of features an endpoint is believed to support.
// The flags are independent booleans; Chat is true for every usable endpoint.
type Capabilities struct {
	Chat      bool `json:"chat"`
	Tools     bool `json:"tools"`
	Vision    bool `json:"vision"`
	JSONMode  bool `json:"json_mode"`
	Streaming bool `json:"streaming"`
}

// ProviderInfo is the result of endpoint detection: an identity, a capability
// guess, and a confidence score ranking how strong the classifying signal
// was. DetectedBy is a short provenance tag such as "url" or "probe:/models".
type ProviderInfo struct {
	Name         string       `json:"name"`
	Capabilities Capabilities `json:"capabilities"`
	Confidence   float64      `json:"confidence"`
	DetectedBy   string       `json:"detected_by"`
}

// SystemText concatenates the text of all system-role messages in order,
// newline-joined and trimmed. Adapters that carry system instructions in a
// dedicated request field (Anthropic's `system`, Gemini's
// `systemInstruction`) share this extraction rule. For part-sequence
// messages only text parts contribute; image references are ignored.
func SystemText(messages []Message) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role != RoleSystem {
			continue
		}
		if len(msg.Parts) > 0 {
			for _, part := range msg.Parts {
				if part.Type == ContentTypeText && part.Text != "" {
					parts = append(parts, part.Text)
				}
			}
			continue
		}
		parts = append(parts, msg.Content)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
