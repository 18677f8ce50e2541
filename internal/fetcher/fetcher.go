package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultURL serves the web app's environment document.
const DefaultURL = "https://my.tado.com/webapp/env.js"

// maxBodySize caps how much of the document is read.
const maxBodySize = 1 << 20

// Fetcher downloads the environment document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type httpFetcher struct {
	client    *http.Client
	userAgent string
}

// New returns a Fetcher using client. A nil client falls back to
// http.DefaultClient; an empty userAgent leaves Go's default in place.
func New(client *http.Client, userAgent string) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, userAgent: userAgent}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > 512 {
			body = body[:512]
		}
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if len(body) > maxBodySize {
		return "", fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}
	return string(body), nil
}
