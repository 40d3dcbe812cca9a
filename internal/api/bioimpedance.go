// ABOUTME: Bioimpedance endpoints scoped under a profile: CRUD plus latest.
// ABOUTME: History order is chronological and used for trend display.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harperreed/fittrack/internal/models"
)

// ListBioimpedance returns the measurement history for the profile.
func (c *Client) ListBioimpedance(ctx context.Context, profileID string) ([]models.BioimpedanceData, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire []bioimpedanceWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profiles/%s/bioimpedance", profileID), nil, true, &wire); err != nil {
		return nil, err
	}
	records := make([]models.BioimpedanceData, 0, len(wire))
	for _, b := range wire {
		records = append(records, bioimpedanceFromWire(b))
	}
	return records, nil
}

// LatestBioimpedance returns the most recent measurement.
func (c *Client) LatestBioimpedance(ctx context.Context, profileID string) (*models.BioimpedanceData, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire bioimpedanceWire
	path := fmt.Sprintf("/api/profiles/%s/bioimpedance/latest", profileID)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	record := bioimpedanceFromWire(wire)
	return &record, nil
}

// CreateBioimpedance stores a measurement and returns the server's copy.
func (c *Client) CreateBioimpedance(ctx context.Context, profileID string, b models.BioimpedanceData) (*models.BioimpedanceData, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire bioimpedanceWire
	path := fmt.Sprintf("/api/profiles/%s/bioimpedance", profileID)
	if err := c.do(ctx, http.MethodPost, path, bioimpedanceToWire(b), true, &wire); err != nil {
		return nil, err
	}
	created := bioimpedanceFromWire(wire)
	return &created, nil
}

// GetBioimpedance fetches a single measurement.
func (c *Client) GetBioimpedance(ctx context.Context, profileID, id string) (*models.BioimpedanceData, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(id); err != nil {
		return nil, err
	}
	var wire bioimpedanceWire
	path := fmt.Sprintf("/api/profiles/%s/bioimpedance/%s", profileID, id)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	record := bioimpedanceFromWire(wire)
	return &record, nil
}

// UpdateBioimpedance replaces a measurement and returns the server's copy.
func (c *Client) UpdateBioimpedance(ctx context.Context, profileID string, b models.BioimpedanceData) (*models.BioimpedanceData, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(b.ID); err != nil {
		return nil, err
	}
	var wire bioimpedanceWire
	path := fmt.Sprintf("/api/profiles/%s/bioimpedance/%s", profileID, b.ID)
	if err := c.do(ctx, http.MethodPut, path, bioimpedanceToWire(b), true, &wire); err != nil {
		return nil, err
	}
	updated := bioimpedanceFromWire(wire)
	return &updated, nil
}

// DeleteBioimpedance removes a measurement.
func (c *Client) DeleteBioimpedance(ctx context.Context, profileID, id string) error {
	if err := guardServerID(profileID); err != nil {
		return err
	}
	if err := guardServerID(id); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/profiles/%s/bioimpedance/%s", profileID, id)
	return c.do(ctx, http.MethodDelete, path, nil, true, nil)
}
