package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"edmwatch/config"
)

// Client is the shared HTTP client for all adapters: bounded timeout,
// small retry count, browser user agent.
type Client struct {
	http      *http.Client
	retries   int
	userAgent string
}

// NewClient builds a client with the given per-request timeout and
// attempt count.
func NewClient(timeout time.Duration, retries int) *Client {
	if retries < 1 {
		retries = 1
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		retries:   retries,
		userAgent: config.UserAgent,
	}
}

// Get fetches a URL, retrying on transport errors and non-200 responses.
// The last error is returned after the final attempt.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.retries; attempt++ {
		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
