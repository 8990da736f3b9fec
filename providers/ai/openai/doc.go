// Package openai implements [ai.Provider] for the Chat Completions wire
// format shared by OpenAI and the many vendors that clone its API (Groq,
// OpenRouter, Together, Mistral, xAI, ...). Messages and tools are passed
// through almost verbatim; streaming uses SSE "data:" lines terminated by the
// [DONE] sentinel.
package openai
