// ABOUTME: Profile endpoints: list, create, get, update.
// ABOUTME: Profiles are never deleted from the client; logout only clears the local copy.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harperreed/fittrack/internal/models"
)

// ListProfiles returns all profiles visible to the authenticated user.
func (c *Client) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var wire []profileWire
	if err := c.do(ctx, http.MethodGet, "/api/profiles", nil, true, &wire); err != nil {
		return nil, err
	}
	profiles := make([]models.UserProfile, 0, len(wire))
	for _, p := range wire {
		profiles = append(profiles, profileFromWire(p))
	}
	return profiles, nil
}

// CreateProfile creates a profile and returns the server's canonical copy.
func (c *Client) CreateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	body := profileToWire(p)
	body.ID = ""
	var wire profileWire
	if err := c.do(ctx, http.MethodPost, "/api/profiles", body, true, &wire); err != nil {
		return nil, err
	}
	created := profileFromWire(wire)
	return &created, nil
}

// GetProfile fetches a single profile by ID.
func (c *Client) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	if err := guardServerID(id); err != nil {
		return nil, err
	}
	var wire profileWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profiles/%s", id), nil, true, &wire); err != nil {
		return nil, err
	}
	profile := profileFromWire(wire)
	return &profile, nil
}

// UpdateProfile replaces a profile and returns the server's canonical copy.
func (c *Client) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	if err := guardServerID(p.ID); err != nil {
		return nil, err
	}
	var wire profileWire
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/profiles/%s", p.ID), profileToWire(p), true, &wire); err != nil {
		return nil, err
	}
	updated := profileFromWire(wire)
	return &updated, nil
}
