// Package graph is a minimal typed client for the Microsoft Graph mail
// endpoints: folder enumeration and filtered, paginated message listing.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the fixed versioned base path of the Graph API
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// ErrTooManyPages is returned when a pagination chain exceeds the page limit.
// A server that keeps handing out nextLinks would otherwise hang the caller.
var ErrTooManyPages = errors.New("pagination exceeded page limit")

// Client issues authenticated GET requests against the Graph mail API
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	pageLimit  int
}

// Option configures a Client
type Option func(*Client)

// WithPageSize sets the $top value requested per page
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithPageLimit caps how many pagination links the client will follow
func WithPageLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageLimit = n
		}
	}
}

// New creates a Client. The HTTP client must already attach credentials;
// token handling and transport-level retries are not this package's concern.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		pageSize:   50,
		pageLimit:  1000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON fetches one page and decodes it into out
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
