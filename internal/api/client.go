// Package api implements the HTTP clients for the remote trip-planning API.
// The wire contract is JSON over REST with RFC 3339 timestamps; the session
// coordinator consumes these clients through its own interfaces and owns all
// error classification beyond not-found.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request when the caller's context carries no
// earlier deadline.
const DefaultTimeout = 10 * time.Second

// Client talks to the remote trip and participant endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the API at baseURL (no trailing slash required).
// A non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do issues one JSON request and decodes the response into out (skipped when
// out is nil). Non-2xx statuses become errors carrying the status code so
// callers can map 404 to domain.ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errStatus{status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errStatus{status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// errStatus is a non-2xx response. It is unwrapped into the domain taxonomy
// by the resource methods in trip.go and participant.go.
type errStatus struct {
	status int
}

func (e errStatus) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}
