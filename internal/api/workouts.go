// ABOUTME: Workout endpoints scoped under a profile: CRUD plus today's schedule.
// ABOUTME: Responses are always the server's canonical copy, never the request echo.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harperreed/fittrack/internal/models"
)

// ListWorkouts returns all workouts for the profile.
func (c *Client) ListWorkouts(ctx context.Context, profileID string) ([]models.Workout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire []workoutWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profiles/%s/workouts", profileID), nil, true, &wire); err != nil {
		return nil, err
	}
	workouts := make([]models.Workout, 0, len(wire))
	for _, w := range wire {
		workouts = append(workouts, workoutFromWire(w))
	}
	return workouts, nil
}

// TodayWorkouts returns the workouts scheduled for today.
func (c *Client) TodayWorkouts(ctx context.Context, profileID string) ([]models.Workout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire []workoutWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profiles/%s/workouts/today", profileID), nil, true, &wire); err != nil {
		return nil, err
	}
	workouts := make([]models.Workout, 0, len(wire))
	for _, w := range wire {
		workouts = append(workouts, workoutFromWire(w))
	}
	return workouts, nil
}

// CreateWorkout creates a workout and returns the server's copy with
// assigned IDs and timestamps.
func (c *Client) CreateWorkout(ctx context.Context, profileID string, w models.Workout) (*models.Workout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	var wire workoutWire
	path := fmt.Sprintf("/api/profiles/%s/workouts", profileID)
	if err := c.do(ctx, http.MethodPost, path, workoutToWire(w), true, &wire); err != nil {
		return nil, err
	}
	created := workoutFromWire(wire)
	return &created, nil
}

// GetWorkout fetches a single workout.
func (c *Client) GetWorkout(ctx context.Context, profileID, id string) (*models.Workout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(id); err != nil {
		return nil, err
	}
	var wire workoutWire
	path := fmt.Sprintf("/api/profiles/%s/workouts/%s", profileID, id)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	workout := workoutFromWire(wire)
	return &workout, nil
}

// UpdateWorkout replaces a workout and returns the server's copy.
func (c *Client) UpdateWorkout(ctx context.Context, profileID string, w models.Workout) (*models.Workout, error) {
	if err := guardServerID(profileID); err != nil {
		return nil, err
	}
	if err := guardServerID(w.ID); err != nil {
		return nil, err
	}
	var wire workoutWire
	path := fmt.Sprintf("/api/profiles/%s/workouts/%s", profileID, w.ID)
	if err := c.do(ctx, http.MethodPut, path, workoutToWire(w), true, &wire); err != nil {
		return nil, err
	}
	updated := workoutFromWire(wire)
	return &updated, nil
}

// DeleteWorkout removes a workout. The server answers 204 on success.
func (c *Client) DeleteWorkout(ctx context.Context, profileID, id string) error {
	if err := guardServerID(profileID); err != nil {
		return err
	}
	if err := guardServerID(id); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/profiles/%s/workouts/%s", profileID, id)
	return c.do(ctx, http.MethodDelete, path, nil, true, nil)
}
