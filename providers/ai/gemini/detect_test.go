package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestDetect_ModelsOK verifies the near-certain grade when the keyed models
// listing answers 200.
func TestDetect_ModelsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key query parameter, got %q", r.URL.RawQuery)
		}
		if _, err := w.Write([]byte(`{"models":[]}`)); err != nil {
			t.Fatalf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	info := New(server.URL, "test-key").Detect(context.Background())

	if info.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", info.Confidence)
	}
	if info.DetectedBy != "probe:/v1beta/models" {
		t.Errorf("expected detected_by %q, got %q", "probe:/v1beta/models", info.DetectedBy)
	}
	if info.Name != "google" {
		t.Errorf("expected name %q, got %q", "google", info.Name)
	}
}

// TestDetect_AuthRequired verifies the downgraded grade on a 403.
func TestDetect_AuthRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	info := New(server.URL, "bad-key").Detect(context.Background())

	if info.Confidence != 0.7 {
		t.Errorf("expected confidence 0.7, got %v", info.Confidence)
	}
	if info.DetectedBy != "probe:/v1beta/models_auth" {
		t.Errorf("expected detected_by %q, got %q", "probe:/v1beta/models_auth", info.DetectedBy)
	}
}

// TestDetect_Unreachable verifies the transport-failure grade.
func TestDetect_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	info := New(server.URL, "test-key").Detect(context.Background())

	if info.Confidence != 0.4 {
		t.Errorf("expected confidence 0.4, got %v", info.Confidence)
	}
	if info.DetectedBy != "probe:error" {
		t.Errorf("expected detected_by %q, got %q", "probe:error", info.DetectedBy)
	}
}
