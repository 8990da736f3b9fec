package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// TestStreamChat_TwoChunks verifies the simulated stream: one content chunk
// from the one-shot result, then a terminal chunk with the finish reason.
func TestStreamChat_TwoChunks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateContentResponse{
			Candidates: []candidate{{
				Content:      candidateContent{Role: "model", Parts: []part{{Text: "Full answer"}}},
				FinishReason: "STOP",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	stream, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gemini-2.0-flash"))
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

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Content != "Full answer" {
		t.Errorf("expected content %q, got %q", "Full answer", chunks[0].Content)
	}
	if chunks[1].FinishReason != "STOP" {
		t.Errorf("expected finish reason %q, got %q", "STOP", chunks[1].FinishReason)
	}
}

// TestStreamChat_ChatError verifies that the underlying one-shot failure
// fails the StreamChat call itself rather than surfacing mid-stream.
func TestStreamChat_ChatError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := New(server.URL, "bad-key")

	_, err := provider.StreamChat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gemini-2.0-flash"))

	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
