package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultServerURL is used when no server URL is configured.
	DefaultServerURL = "http://localhost:4000"

	// EnvServerURL overrides the observability server base URL.
	EnvServerURL = "OBSERVABILITY_SERVER_URL"

	// EnvDebug, when set, makes event senders echo the server response.
	EnvDebug = "OBSERVABILITY_DEBUG"

	healthTimeout = 2 * time.Second
	sendTimeout   = 5 * time.Second
)

// ServerURLFromEnv returns the observability server base URL from the
// environment, or the default.
func ServerURLFromEnv() string {
	if url := os.Getenv(EnvServerURL); url != "" {
		return url
	}
	return DefaultServerURL
}

// ConnectionError indicates the server could not be reached at all:
// DNS failure, refused connection, or timeout.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to server at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ServerError indicates the server was reachable but rejected the request
// with a non-2xx status.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned error %d: %s", e.StatusCode, e.Body)
}

// Client talks to the observability server. It is stateless: each call is a
// single bounded-timeout request and nothing is cached between calls.
type Client struct {
	baseURL      string
	healthClient *http.Client
	eventClient  *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		healthClient: &http.Client{Timeout: healthTimeout},
		eventClient:  &http.Client{Timeout: sendTimeout},
	}
}

// CheckHealth reports whether the server answers GET /health with status
// 200. Any connection error, timeout, or other status counts as unhealthy.
// The result is never cached; every call probes the server again.
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// Send posts the event to /events and returns the server's parsed JSON
// response. It returns a *ConnectionError when the server is unreachable
// and a *ServerError when it answers with a non-2xx status.
func (c *Client) Send(ctx context.Context, event *Event) (map[string]interface{}, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.eventClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: c.baseURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode server response: %w", err)
	}

	return parsed, nil
}
