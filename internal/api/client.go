// ABOUTME: REST client core for the fittrack backend.
// ABOUTME: Shared request primitive with bearer auth, JSON codec, and typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every request. The backend is expected to be close
// (often localhost), so a stuck call is a bug, not a slow network.
const DefaultTimeout = 15 * time.Second

// TokenSource provides the current bearer token. An empty string means no
// session; the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is returned for any non-2xx response. Body is the raw response
// text; callers must not assume it parses as JSON.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		cut := 200
		// Back up to a rune boundary so the cut never splits a UTF-8 sequence.
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	if body == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, body)
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an
// APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the fittrack REST backend. It is stateless; the bearer
// token is read from the injected TokenSource on every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	deviceID   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithDeviceID attaches a device identifier header to every request.
func WithDeviceID(id string) Option {
	return func(c *Client) { c.deviceID = id }
}

// New creates a client for the given base URL. tokens may be nil for a
// purely anonymous client (health checks only).
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request against the backend. On 2xx it decodes the JSON
// body into out (skipped for 204 and empty bodies); on non-2xx it returns
// an *APIError carrying the status and raw body text.
func (c *Client) do(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.deviceID != "" {
		req.Header.Set("X-Device-Id", c.deviceID)
	}
	if requireAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log.Debugf("api: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debugf("api: %s %s -> %d", method, path, resp.StatusCode)
		return &APIError{Status: resp.StatusCode, Body: string(respBytes)}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil || len(respBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var guidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsGUID reports whether s has the canonical 8-4-4-4-12 hex UUID shape.
// Server-assigned IDs are GUIDs; locally generated placeholder IDs are not.
func IsGUID(s string) bool {
	return guidRe.MatchString(s)
}

// guardServerID rejects IDs that are not server-assigned GUIDs before they
// become URL path segments.
func guardServerID(id string) error {
	if !IsGUID(id) {
		return fmt.Errorf("id %q is not a server-assigned GUID", id)
	}
	return nil
}
