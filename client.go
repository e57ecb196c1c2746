package newssearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkError wraps any transport failure or non-success HTTP status. It
// always carries the URL that failed so callers can log something useful
// without reconstructing request state.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPClient issues GET requests with a fixed default header set merged with
// per-call overrides. The default headers identify the crawler with a
// browser user agent and ask for Korean-language responses, matching what
// the backends expect from a real visitor.
type HTTPClient struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTPClient builds a client with the given default headers and timeout.
func NewHTTPClient(headers map[string]string, timeout time.Duration) *HTTPClient {
	defaults := make(map[string]string, len(headers))
	for k, v := range headers {
		defaults[k] = v
	}
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		headers: defaults,
	}
}

// Get fetches url and returns the full response body. referer, when
// non-empty, is attached as the Referer header on top of the defaults. Any
// transport error or non-2xx status yields a *NetworkError; a partial body
// is never returned.
func (c *HTTPClient) Get(ctx context.Context, url, referer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	return body, nil
}
