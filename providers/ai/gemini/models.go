package gemini

/*
	GENERATE CONTENT API - REQUEST TYPES
*/

type generateContentRequest struct {
	Contents          []content          `json:"contents"`
	GenerationConfig  generationConfig   `json:"generationConfig"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
}

// content is one conversation turn. Role is "user" or "model"; the API has
// no other roles, so the conversion layer collapses everything else.
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

// part carries a single text fragment. Image references are degraded to text
// placeholders by the conversion layer; the native inline-binary path is not
// exercised.
type part struct {
	Text string `json:"text"`
}

type systemInstruction struct {
	Parts []part `json:"parts"`
}

// generationConfig mirrors the vendor's camelCase sampling block.
// MaxOutputTokens is only serialized when a limit was actually requested.
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

/*
	GENERATE CONTENT API - RESPONSE TYPES
*/

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      candidateContent `json:"content"`
	FinishReason string           `json:"finishReason"`
}

type candidateContent struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}
