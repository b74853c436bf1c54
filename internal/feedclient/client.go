// Package feedclient fetches feed pages from the demo HTTP API. Its
// FetchPage method satisfies the pager's fetch contract: idempotent per
// page, short or empty only on the final page.
package feedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jander96/bloc-scroll-paging/internal/feed"
)

// StatusError reports a non-200 response from the feed API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed API returned status %d", e.Code)
}

// Client talks to the feed HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (scheme + host, no path).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: feed.DefaultRequestTimeout},
	}
}

// FetchPage retrieves one page of entries. It satisfies
// paging.FetchFunc[feed.Entry].
func (c *Client) FetchPage(ctx context.Context, pageSize, page int) ([]feed.Entry, error) {
	u, err := url.Parse(c.baseURL + "/api/entries")
	if err != nil {
		return nil, fmt.Errorf("building entries URL: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building entries request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body feed.Page
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}
	return body.Entries, nil
}

// Health reports whether the API answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
