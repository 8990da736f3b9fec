// Package gemini implements [ai.Provider] for Google's Generative Language
// API (v1beta generateContent). The key travels as a query parameter rather
// than a header, roles collapse to user/model, and system text moves into the
// systemInstruction field. The vendor's incremental protocol is not wired up:
// StreamChat performs a one-shot call and re-presents it as a two-chunk
// stream.
package gemini
