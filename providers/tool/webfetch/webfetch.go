// Package webfetch provides a model-callable tool that fetches a web page
// and converts its HTML to Markdown, giving text-only models a readable view
// of a URL.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/Rreeqqwel/omni-agent-cli/providers/tool"
)

const (
	// defaultTimeout bounds the whole fetch.
	defaultTimeout = 30 * time.Second
	// maxBodySize caps the response body (10 MB).
	maxBodySize = 10 * 1024 * 1024
	// maxRedirects is the redirect-follow limit.
	maxRedirects = 10

	userAgent = "omni-agent-webfetch/1.0"
)

// Input is the argument struct the model fills in.
type Input struct {
	URL string `json:"url" description:"The web page to fetch. Partial URLs like example.com are promoted to https."`
}

// Output carries the final URL (after redirects) and the page as Markdown.
type Output struct {
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// NewWebFetchTool returns a [tool.GenericTool] that fetches pages with a
// dedicated HTTP client and converts them via html-to-markdown.
func NewWebFetchTool() *tool.Tool[Input, Output] {
	return tool.New("WebFetch", Fetch,
		tool.WithDescription("Fetches a web page over HTTP(S) and returns its content converted to Markdown. Follows redirects; partial URLs get an https:// prefix."))
}

// Fetch retrieves input.URL and converts the body to Markdown. It returns an
// error for an empty URL, a non-200 status, a body over the size cap, or a
// failed conversion.
func Fetch(ctx context.Context, input Input) (Output, error) {
	pageURL := strings.TrimSpace(input.URL)
	if pageURL == "" {
		return Output{}, fmt.Errorf("URL cannot be empty")
	}
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		pageURL = "https://" + pageURL
	}

	client := &http.Client{
		Timeout: defaultTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Output{}, fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Output{}, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("unexpected status %s fetching %s", resp.Status, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return Output{}, fmt.Errorf("reading body: %w", err)
	}
	if len(body) > maxBodySize {
		return Output{}, fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return Output{}, fmt.Errorf("converting HTML to Markdown: %w", err)
	}

	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return Output{URL: finalURL, Markdown: markdown}, nil
}
