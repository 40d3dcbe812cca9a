// ABOUTME: Water intake endpoints: daily summary, add entry, delete entry.
// ABOUTME: Summaries are keyed by UTC calendar date; totals are server-computed.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

type addWaterRequest struct {
	AmountMl int     `json:"amountMl"`
	Note     *string `json:"note,omitempty"`
}

// WaterDate formats a time as the UTC calendar date the water API filters on.
func WaterDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// WaterSummary returns the summary for one UTC calendar date (YYYY-MM-DD).
func (c *Client) WaterSummary(ctx context.Context, profileID, date string) (*models.DailyWaterSummary, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire waterSummaryWire
	path := fmt.Sprintf("/api/profiles/%s/water?date=%s", profileID, url.QueryEscape(date))
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	summary := waterSummaryFromWire(wire)
	return &summary, nil
}

// AddWater logs a drink and returns the updated summary for that day, with
// the total recomputed server-side.
func (c *Client) AddWater(ctx context.Context, profileID string, amountMl int, note *string) (*models.DailyWaterSummary, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire waterSummaryWire
	body := addWaterRequest{AmountMl: amountMl, Note: note}
	path := fmt.Sprintf("/api/profiles/%s/water", profileID)
	if err := c.do(ctx, http.MethodPost, path, body, true, &wire); err != nil {
		return nil, err
	}
	summary := waterSummaryFromWire(wire)
	return &summary, nil
}

// DeleteWater removes a single entry. The server answers 204; callers
// re-fetch the day's summary for the recomputed total.
func (c *Client) DeleteWater(ctx context.Context, profileID, entryID string) error {
	if err := guardServerID(profileID); err != nil {
		return err
	}
	if err := guardServerID(entryID); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/profiles/%s/water/%s", profileID, entryID)
	return c.do(ctx, http.MethodDelete, path, nil, true, nil)
}
