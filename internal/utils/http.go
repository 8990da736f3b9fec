package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// HeaderOption is a single HTTP header to set on an outgoing request.
// Options are applied after the defaults, so a HeaderOption can override
// Content-Type or Authorization when a vendor needs something else.
type HeaderOption struct {
	Key   string
	Value string
}

// maxResponseBodySize caps response body reads (10 MB). Enforced via
// io.LimitReader so a rogue endpoint cannot cause unbounded allocation.
const maxResponseBodySize int64 = 10 * 1024 * 1024

// CloseWithLog closes c and logs a warning on failure. Used in defers where
// a close error must not override the primary error path.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}

// DoPostSync performs a synchronous HTTP POST with a JSON body and decodes a
// 2xx response into OutputStruct. The response body is always drained and
// closed before returning.
//
// Error handling:
//   - request construction and transport failures return a wrapped error with
//     a nil *http.Response
//   - non-2xx statuses return an error carrying the status code and body,
//     together with the (closed) *http.Response so callers that fingerprint
//     endpoints can still inspect the status
//   - JSON decode failures include a truncated body preview for debugging
//
// When apiKey is non-empty it is sent as a Bearer token; vendors that
// authenticate differently pass an empty apiKey and supply their own headers.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateStringDefault(string(respBody)))
	}

	return res, &resStruct, nil
}

// DoGet performs an HTTP GET and returns the response together with its fully
// read body. Unlike [DoPostSync] a non-2xx status is NOT an error: DoGet
// exists for detection probes, where the status code itself is the signal and
// the caller decides what it means. Only transport-level failures return a
// non-nil error. The response body is always closed before returning.
func DoGet(ctx context.Context, client *http.Client, url string, apiKey string, headers ...HeaderOption) (*http.Response, []byte, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	return res, respBody, nil
}
