// Package anthropic implements [ai.Provider] for Anthropic's Messages API.
// The wire format differs from the Chat Completions shape in three ways this
// adapter papers over: system text travels in a dedicated top-level field,
// authentication uses x-api-key plus a version header instead of a Bearer
// token, and streaming events carry a "type" discriminator instead of a
// [DONE] sentinel.
package anthropic
