package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"edmwatch/types"
)

// FeedClient is a thin HTTP client for the feed API
type FeedClient struct {
	baseURL string
	client  *http.Client
}

// NewFeedClient creates a new feed API client
func NewFeedClient(baseURL string) *FeedClient {
	return &FeedClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetItems fetches the current feed, optionally filtered by tier
func (c *FeedClient) GetItems(tier int) (*types.FeedOutput, error) {
	endpoint := c.baseURL + "/api/items"
	if tier > 0 {
		endpoint += "?" + url.Values{"tier": []string{fmt.Sprint(tier)}}.Encode()
	}

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var feed types.FeedOutput
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &feed, nil
}

// Refresh triggers a pipeline run on the server and returns the number
// of new items it surfaced
func (c *FeedClient) Refresh() (int, error) {
	resp, err := c.client.Post(c.baseURL+"/api/refresh", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		return 0, fmt.Errorf("failed to trigger refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		NewItems int `json:"new_items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return out.NewItems, nil
}
