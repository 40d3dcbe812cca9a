// ABOUTME: Completed-workout endpoints: records, aggregate stats, delete.
// ABOUTME: Records are append-only; stats are always server-aggregated.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

type completeWorkoutRequest struct {
	WorkoutID       string `json:"workoutId"`
	CompletedAt     string `json:"completedAt"`
	DurationSeconds int    `json:"durationSeconds"`
}

// ListCompleted returns the completion history for the profile.
func (c *Client) ListCompleted(ctx context.Context, profileID string) ([]models.CompletedWorkout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire []completedWorkoutWire
	path := fmt.Sprintf("/api/profiles/%s/completed-workouts", profileID)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	records := make([]models.CompletedWorkout, 0, len(wire))
	for _, r := range wire {
		records = append(records, completedWorkoutFromWire(r))
	}
	return records, nil
}

// CompleteWorkout records a finished session and returns the server's copy.
func (c *Client) CompleteWorkout(ctx context.Context, profileID, workoutID string, completedAt time.Time, durationSeconds int) (*models.CompletedWorkout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(workoutID); err != nil {
		return nil, err
	}
	var wire completedWorkoutWire
	body := completeWorkoutRequest{
		WorkoutID:       workoutID,
		CompletedAt:     completedAt.Format(time.RFC3339),
		DurationSeconds: durationSeconds,
	}
	path := fmt.Sprintf("/api/profiles/%s/completed-workouts", profileID)
	if err := c.do(ctx, http.MethodPost, path, body, true, &wire); err != nil {
		return nil, err
	}
	record := completedWorkoutFromWire(wire)
	return &record, nil
}

// WorkoutStats returns the pre-aggregated completion stats.
func (c *Client) WorkoutStats(ctx context.Context, profileID string) (*models.WorkoutStats, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire workoutStatsWire
	path := fmt.Sprintf("/api/profiles/%s/completed-workouts/stats", profileID)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	stats := workoutStatsFromWire(wire)
	return &stats, nil
}

// GetCompleted fetches a single completion record.
func (c *Client) GetCompleted(ctx context.Context, profileID, id string) (*models.CompletedWorkout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(id); err != nil {
		return nil, err
	}
	var wire completedWorkoutWire
	path := fmt.Sprintf("/api/profiles/%s/completed-workouts/%s", profileID, id)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	record := completedWorkoutFromWire(wire)
	return &record, nil
}

// DeleteCompleted removes a completion record.
func (c *Client) DeleteCompleted(ctx context.Context, profileID, id string) error {
	if err := guardServerID(profileID); err != nil {
		return err
	}
	if err := guardServerID(id); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/profiles/%s/completed-workouts/%s", profileID, id)
	return c.do(ctx, http.MethodDelete, path, nil, true, nil)
}
