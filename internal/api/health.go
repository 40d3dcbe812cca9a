// ABOUTME: Backend health check endpoint.
// ABOUTME: Unauthenticated; used by doctor-style commands before anything else.
package api

import (
	"context"
	"net/http"
)

// Health checks backend reachability. A nil error means the service
// answered 2xx on /health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, false, nil)
}
