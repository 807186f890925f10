package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnreachable wraps failures where no response came back from the backend.
var ErrUnreachable = errors.New("backend unreachable")

// StatusError reports a completed call that returned a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s returned status %d", e.Method, e.URL, e.Code)
}

type Request struct {
	Method        string
	Path          string
	Authorization string
	Body          []byte
}

type Response struct {
	Body []byte
}

// Client forwards requests to a single backend origin.
type Client struct {
	Origin     string
	httpClient *http.Client
}

// NewClient creates a Client for origin. The underlying http.Client uses
// http.DefaultTransport and never follows redirects: a 3xx comes back as a
// *StatusError so a DELETE is never replayed as a GET elsewhere.
func NewClient(origin string, timeout time.Duration) *Client {
	return &Client{
		Origin: strings.TrimRight(origin, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// URL joins the backend origin and path.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.Origin + path
}

// Forward performs exactly one call to the backend. The authorization value
// is sent as given.
func (c *Client) Forward(ctx context.Context, r Request) (*Response, error) {
	target := c.URL(r.Path)

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("error building backend request for %s: %w", target, err)
	}
	if r.Authorization != "" {
		req.Header.Set("Authorization", r.Authorization)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, r.Method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Method: r.Method, URL: target, Code: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading backend response body: %w", err)
	}

	return &Response{Body: bodyBytes}, nil
}
