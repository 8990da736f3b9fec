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

// TestNew verifies construction defaults and base URL normalization.
func TestNew(t *testing.T) {
	provider := New("", "key")
	if provider == nil {
		t.Fatal("New returned nil")
	}
	if provider.baseURL != defaultBaseURL+"/v1" {
		t.Errorf("expected baseURL %q, got %q", defaultBaseURL+"/v1", provider.baseURL)
	}
	if provider.Name() != "openai_compatible" {
		t.Errorf("expected default name %q, got %q", "openai_compatible", provider.Name())
	}
}

// TestNormalizeBaseURL verifies the /v1 suffix handling for the shapes
// callers actually pass.
func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://host", "https://host/v1"},
		{"https://host/", "https://host/v1"},
		{"https://host/v1", "https://host/v1"},
		{"https://host/v1/", "https://host/v1"},
	}

	for _, testCase := range tests {
		if got := normalizeBaseURL(testCase.input); got != testCase.expected {
			t.Errorf("normalizeBaseURL(%q) = %q, expected %q", testCase.input, got, testCase.expected)
		}
	}
}

// TestWithName verifies the label override and chaining.
func TestWithName(t *testing.T) {
	provider := New("https://host", "key").WithName("groq")
	if provider.Name() != "groq" {
		t.Errorf("expected name %q, got %q", "groq", provider.Name())
	}
}

// TestChat_Basic exercises the happy path: Bearer auth, request body shape,
// and response decoding.
func TestChat_Basic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected Bearer auth, got %q", r.Header.Get("Authorization"))
		}

		var reqBody chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if reqBody.Model != "gpt-4o" {
			t.Errorf("expected model %q, got %q", "gpt-4o", reqBody.Model)
		}
		if reqBody.Stream {
			t.Error("expected stream=false on a one-shot chat")
		}
		if len(reqBody.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(reqBody.Messages))
		}

		resp := chatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  "gpt-4o",
			Choices: []chatChoice{{
				Message:      chatResponseMessage{Role: "assistant", Content: "Hello!"},
				FinishReason: "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	result, err := provider.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))

	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if result.Content != "Hello!" {
		t.Errorf("expected content %q, got %q", "Hello!", result.Content)
	}
	if result.FinishReason != "stop" {
		t.Errorf("expected finish reason %q, got %q", "stop", result.FinishReason)
	}
}

// TestChat_ToolCalls verifies that tool_calls on the response message are
// mapped with their raw argument text.
func TestChat_ToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{
			"id": "chatcmpl-tools",
			"object": "chat.completion",
			"choices": [{
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_1",
						"type": "function",
						"function": {"name": "get_weather", "arguments": "{\"city\":\"London\"}"}
					}]
				},
				"finish_reason": "tool_calls"
			}]
		}`)); err != nil {
			t.Fatalf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	result, err := provider.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Weather in London?"},
	}, ai.NewRequestConfig("gpt-4o"))

	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(result.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(result.ToolCalls))
	}
	call := result.ToolCalls[0]
	if call.ID != "call_1" || call.Name != "get_weather" {
		t.Errorf("unexpected tool call: %+v", call)
	}
	if call.Arguments != `{"city":"London"}` {
		t.Errorf("expected raw arguments %q, got %q", `{"city":"London"}`, call.Arguments)
	}
	if result.FinishReason != "tool_calls" {
		t.Errorf("expected finish reason %q, got %q", "tool_calls", result.FinishReason)
	}
}

// TestChat_NoChoices verifies the error when the endpoint answers 200 with
// an empty choices array.
func TestChat_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`)); err != nil {
			t.Fatalf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	_, err := provider.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))

	if err == nil {
		t.Fatal("expected error for empty choices, got nil")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("expected error to mention missing choices, got: %v", err)
	}
}

// TestChat_NonSuccess verifies that a non-2xx response surfaces the status
// code in the error.
func TestChat_NonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		if _, err := w.Write([]byte(`{"error":{"message":"rate limited"}}`)); err != nil {
			t.Fatalf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	provider := New(server.URL, "test-key")

	_, err := provider.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hello"},
	}, ai.NewRequestConfig("gpt-4o"))

	if err == nil {
		t.Fatal("expected error for 429 status, got nil")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected error to contain %q, got: %v", "429", err)
	}
}
