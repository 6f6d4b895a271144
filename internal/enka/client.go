package enka

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public showcase API host.
const DefaultBaseURL = "https://enka.network"

const userAgent = "sango/1.0"

// Client fetches player showcases over HTTP. It implements Fetcher.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a showcase client. An empty baseURL selects the
// public host; a zero timeout defaults to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchPlayer retrieves and decodes the showcase for one uid.
// Upstream failures surface as UpstreamError; they are never retried
// here - retry policy belongs to the caller.
func (c *Client) FetchPlayer(ctx context.Context, uid int64) (*Snapshot, error) {
	url := fmt.Sprintf("%s/api/uid/%d", c.baseURL, uid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &UpstreamError{Message: "build request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: "fetch showcase", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("player %d not found", uid)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "rate limited"}
	default:
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "unexpected response"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Message: "read response", Err: err}
	}

	snap, err := DecodeSnapshot(body)
	if err != nil {
		return nil, &UpstreamError{Message: "malformed showcase payload", Err: err}
	}
	return snap, nil
}
