// Package detect classifies an arbitrary LLM endpoint into a provider
// identity, a confidence score, and a capability guess. It depends only on
// the neutral data model, never on the adapters: its output is what selects
// which adapter to construct.
//
// Classification runs in strict tiers, cheapest first, and the first tier
// that produces a result wins — scores are never blended:
//
//  1. hostname pattern match against a static table of known vendor domains
//  2. a live probe that tests whether the endpoint speaks the
//     OpenAI-compatible wire format
//  3. a low-confidence "unknown" fallback
package detect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Rreeqqwel/omni-agent-cli/internal/utils"
	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

// probeTimeout bounds the live-probe tier. The probe opens its own
// short-lived HTTP client so it never interferes with an adapter's client.
const probeTimeout = 8 * time.Second

// Result is one tier's classification.
type Result struct {
	Provider     string
	Confidence   float64
	DetectedBy   string
	Capabilities ai.Capabilities
}

// hostPattern maps a vendor identity to the hostname suffixes that betray it.
// The table is ordered so classification is deterministic, and it is pure
// lookup data: matching never touches the network.
type hostPattern struct {
	provider string
	patterns []*regexp.Regexp
}

var urlPatterns = []hostPattern{
	{"openai", compileAll(`api\.openai\.com$`)},
	{"anthropic", compileAll(`api\.anthropic\.com$`)},
	{"google", compileAll(`generativelanguage\.googleapis\.com$`)},
	{"groq", compileAll(`api\.groq\.com$`)},
	{"mistral", compileAll(`api\.mistral\.ai$`)},
	{"openrouter", compileAll(`openrouter\.ai$`)},
	{"together", compileAll(`api\.together\.xyz$`)},
	{"xai", compileAll(`api\.x\.ai$`, `api\.xai\.com$`)},
	{"azure", compileAll(`openai\.azure\.com$`)},
	{"huggingface", compileAll(`api-inference\.huggingface\.co$`)},
}

// openAICompatible lists the providers that speak the Chat Completions wire
// format and therefore share its default capability set.
var openAICompatible = map[string]bool{
	"openai":     true,
	"openrouter": true,
	"groq":       true,
	"together":   true,
	"azure":      true,
	"xai":        true,
	"mistral":    true,
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(pattern))
	}
	return compiled
}

// ByURL classifies baseURL by hostname alone. A match yields confidence 0.92
// and a per-family default capability set — known defaults encoded as a
// prior, not a live guarantee. The URL's path and query are irrelevant.
func ByURL(baseURL string) (Result, bool) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return Result{}, false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return Result{}, false
	}

	for _, entry := range urlPatterns {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(host) {
				return Result{
					Provider:     entry.provider,
					Confidence:   0.92,
					DetectedBy:   "url",
					Capabilities: defaultCapabilities(entry.provider),
				}, true
			}
		}
	}

	return Result{}, false
}

// defaultCapabilities returns the static default capability set for a known
// provider family. Real capabilities depend on the model; this is a baseline.
func defaultCapabilities(provider string) ai.Capabilities {
	switch {
	case openAICompatible[provider]:
		return ai.Capabilities{Chat: true, Tools: true, JSONMode: true, Streaming: true}
	case provider == "anthropic":
		return ai.Capabilities{Chat: true, Tools: true, Vision: true, Streaming: true}
	case provider == "google":
		return ai.Capabilities{Chat: true, Tools: true, Vision: true, JSONMode: true, Streaming: true}
	case provider == "huggingface":
		return ai.Capabilities{Chat: true}
	default:
		return ai.Capabilities{Chat: true, Streaming: true}
	}
}

// ProbeOpenAICompatible tries to classify an unknown endpoint as
// OpenAI-compatible via GET {base}/v1/models (or /models when the base
// already ends in /v1), with a Bearer key when one was supplied.
//
// Two signals count:
//   - a 200 whose JSON object body carries a top-level "data" or "object"
//     field (the models-list shape) — confidence 0.75
//   - a 401/403/404 whose JSON object body carries an "error" object field
//     (the OpenAI error envelope; the body shape is the signal, not the
//     status alone) — confidence 0.6
//
// Any other outcome, including transport failure, classifies nothing.
func ProbeOpenAICompatible(ctx context.Context, baseURL, apiKey string) (Result, bool) {
	probeURL := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(probeURL, "/v1") {
		probeURL += "/v1"
	}
	probeURL += "/models"

	client := &http.Client{Timeout: probeTimeout}
	defer client.CloseIdleConnections()

	httpResponse, body, err := utils.DoGet(ctx, client, probeURL, apiKey)
	if err != nil {
		return Result{}, false
	}

	compatibleCaps := ai.Capabilities{Chat: true, Tools: true, JSONMode: true, Streaming: true}

	switch httpResponse.StatusCode {
	case http.StatusOK:
		var parsed map[string]json.RawMessage
		if json.Unmarshal(body, &parsed) != nil {
			return Result{}, false
		}
		_, hasData := parsed["data"]
		_, hasObject := parsed["object"]
		if hasData || hasObject {
			return Result{
				Provider:     "openai_compatible",
				Confidence:   0.75,
				DetectedBy:   "probe:/v1/models",
				Capabilities: compatibleCaps,
			}, true
		}

	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		// 401/403 usually mean a missing key but an existing endpoint; 404
		// happens when /models is disabled on an otherwise compatible host.
		var parsed map[string]any
		if json.Unmarshal(body, &parsed) != nil {
			return Result{}, false
		}
		if _, isObject := parsed["error"].(map[string]any); isObject {
			return Result{
				Provider:     "openai_compatible",
				Confidence:   0.6,
				DetectedBy:   "probe:error_fingerprint",
				Capabilities: compatibleCaps,
			}, true
		}
	}

	return Result{}, false
}

// Detect classifies baseURL and always returns exactly one ProviderInfo; it
// never fails. Tiers run in strict order — hostname match, live probe,
// fallback — and their confidences never overlap:
// 0.92 (url) > 0.75 (probe) > 0.6 (error fingerprint) > 0.2 (fallback).
func Detect(ctx context.Context, baseURL, apiKey string) ai.ProviderInfo {
	if byURL, ok := ByURL(baseURL); ok {
		return ai.ProviderInfo{
			Name:         byURL.Provider,
			Capabilities: byURL.Capabilities,
			Confidence:   byURL.Confidence,
			DetectedBy:   byURL.DetectedBy,
		}
	}

	if probe, ok := ProbeOpenAICompatible(ctx, baseURL, apiKey); ok {
		return ai.ProviderInfo{
			Name:         probe.Provider,
			Capabilities: probe.Capabilities,
			Confidence:   probe.Confidence,
			DetectedBy:   probe.DetectedBy,
		}
	}

	return ai.ProviderInfo{
		Name:         "unknown",
		Capabilities: ai.Capabilities{Chat: true},
		Confidence:   0.2,
		DetectedBy:   "fallback",
	}
}
