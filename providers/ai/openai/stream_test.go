package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// sseHandler writes the given SSE lines and the [DONE] sentinel.
func sseHandler(t *testing.T, lines ...string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var reqBody chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if !reqBody.Stream {
			t.Error("expected stream=true in request body")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			if _, err := w.Write([]byte(line + "\n\n")); err != nil {
				t.Fatalf("failed to write SSE line: %v", err)
			}
		}
		if _, err := w.Write([]byte("data: [DONE]\n\n")); err != nil {
			t.Fatalf("failed to write sentinel: %v", err)
		}
	}
}

// TestStreamChat_Basic verifies that content deltas come through and the
// [DONE] sentinel ends the stream cleanly.
func TestStreamChat_Basic(t *testing.T) {
	server := httptest.NewServer(sseHandler(t,
		`data: {"choices":[{"delta":{"role":"assistant","content":"Hi"}}]}`,
		`data: {"choices":[{"delta":{"content":" there"}}]}`,
		`data: {"choices":[{"delta":{"content":"!"},"finish_reason":"stop"}]}`,
	))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	result, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if result.Content != "Hi there!" {
		t.Errorf("expected content %q, got %q", "Hi there!", result.Content)
	}
	if result.FinishReason != "stop" {
		t.Errorf("expected finish reason %q, got %q", "stop", result.FinishReason)
	}
}

// TestStreamChat_SkipsEmptyDeltas verifies that deltas with neither content
// nor tool calls produce no chunk, even when they carry a finish reason.
func TestStreamChat_SkipsEmptyDeltas(t *testing.T) {
	server := httptest.NewServer(sseHandler(t,
		`data: {"choices":[{"delta":{"role":"assistant"}}]}`,
		`data: {"choices":[{"delta":{"content":"Hi"}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"stop"}]}`,
	))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	var chunks []ai.ResponseChunk
	for chunk, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		chunks = append(chunks, chunk)
	}

	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Content != "Hi" {
		t.Errorf("expected content %q, got %q", "Hi", chunks[0].Content)
	}
}

// TestStreamChat_NoBlankSeparators verifies deltas delivered one JSON event
// per line, with no blank lines between data lines and the sentinel directly
// after the last delta.
func TestStreamChat_NoBlankSeparators(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		body := "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n" +
			"data: [DONE]\n"
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("failed to write SSE body: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	var chunks []ai.ResponseChunk
	for chunk, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		chunks = append(chunks, chunk)
	}

	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Content != "Hi" {
		t.Errorf("expected content %q, got %q", "Hi", chunks[0].Content)
	}
}

// TestStreamChat_SkipsBadJSON verifies that unparseable SSE payloads and SSE
// comments are skipped instead of killing the stream.
func TestStreamChat_SkipsBadJSON(t *testing.T) {
	server := httptest.NewServer(sseHandler(t,
		`: keep-alive comment`,
		`data: {this is not json`,
		`data: {"choices":[{"delta":{"content":"survived"}}]}`,
	))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	result, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if result.Content != "survived" {
		t.Errorf("expected content %q, got %q", "survived", result.Content)
	}
}

// TestStreamChat_ToolCallFragments verifies that tool-call deltas arrive as
// raw fragments, not reassembled.
func TestStreamChat_ToolCallFragments(t *testing.T) {
	server := httptest.NewServer(sseHandler(t,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"get_weather","arguments":""}}]}}]}`,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"city\":"}}]}}]}`,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"London\"}"}}]}}]}`,
	))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Weather?"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	result, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(result.ToolCalls) != 3 {
		t.Fatalf("expected 3 raw fragments, got %d", len(result.ToolCalls))
	}
	if result.ToolCalls[0].ID != "call_1" || result.ToolCalls[0].Name != "get_weather" {
		t.Errorf("unexpected first fragment: %+v", result.ToolCalls[0])
	}
	joined := result.ToolCalls[0].Arguments + result.ToolCalls[1].Arguments + result.ToolCalls[2].Arguments
	if joined != `{"city":"London"}` {
		t.Errorf("expected fragments to join to %q, got %q", `{"city":"London"}`, joined)
	}
}

// TestStreamChat_NonSuccess verifies that a non-2xx streaming response fails
// the StreamChat call itself with the status in the error.
func TestStreamChat_NonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		if _, err := w.Write([]byte(`{"error":{"message":"bad key"}}`)); err != nil {
			t.Fatalf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "bad-key")

	_, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))

	if err == nil {
		t.Fatal("expected error for 401 status, got nil")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected error to contain %q, got: %v", "401", err)
	}
}

// TestStreamChat_EarlyBreak verifies that breaking out of the range loop
// stops iteration without error or panic.
func TestStreamChat_EarlyBreak(t *testing.T) {
	server := httptest.NewServer(sseHandler(t,
		`data: {"choices":[{"delta":{"content":"one"}}]}`,
		`data: {"choices":[{"delta":{"content":"two"}}]}`,
		`data: {"choices":[{"delta":{"content":"three"}}]}`,
	))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))
	if err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	count := 0
	for _, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		count++
		if count == 1 {
			break
		}
	}

	if count != 1 {
		t.Errorf("expected to stop after 1 chunk, consumed %d", count)
	}
}
