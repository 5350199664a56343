package httputil

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// DefaultClient is the client used when callers pass nil to [Get].
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// Get fetches url and returns the response body. Transient failures
// (network errors, timeouts, 5xx and 429 responses) come back wrapped in
// [RetryableError] so the call can be driven through [Retry]; other
// non-2xx statuses fail immediately.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, &RetryableError{Err: err}
		}
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return nil, &RetryableError{Err: fmt.Errorf("GET %s: status %d", url, resp.StatusCode)}
	default:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read body from %s: %w", url, err)}
	}
	return body, nil
}
