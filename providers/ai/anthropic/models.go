package anthropic

/*
	MESSAGES API - REQUEST TYPES
*/

// messagesRequest is the body POSTed to /v1/messages. System text never
// travels inline with the messages; it is concatenated into the top-level
// System field by the conversion layer.
type messagesRequest struct {
	Model       string          `json:"model"`
	Messages    []vendorMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"` // required by the API on every request
	Temperature float64         `json:"temperature"`
	System      string          `json:"system,omitempty"`
	Stream      bool            `json:"stream,omitempty"`
}

// vendorMessage passes a non-system message through as a {role, content}
// pair. Content is the generic string shorthand or part sequence, unchanged.
type vendorMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

/*
	MESSAGES API - RESPONSE TYPES
*/

type messagesResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"` // "message"
	Role       string         `json:"role"` // "assistant"
	Content    []contentBlock `json:"content"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
}

type contentBlock struct {
	Type string `json:"type"` // "text" for the blocks this adapter reads
	Text string `json:"text,omitempty"`
}

/*
	MESSAGES API - STREAMING TYPES
*/

// streamEvent is the envelope of one SSE payload. Type discriminates the
// event; only content_block_delta and message_stop matter to this adapter,
// everything else is ignored.
type streamEvent struct {
	Type  string       `json:"type"`
	Delta *streamDelta `json:"delta,omitempty"`
}

type streamDelta struct {
	Type string `json:"type"` // "text_delta" for text content
	Text string `json:"text,omitempty"`
}
