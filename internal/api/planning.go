// ABOUTME: AI planning endpoints: generate, status, accept, preview.
// ABOUTME: The client only validates response shape; generation logic is server-side.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harperreed/fittrack/internal/models"
)

type generatePlanRequest struct {
	ProfileID   string   `json:"profileId"`
	Goal        string   `json:"goal"`
	DaysPerWeek int      `json:"daysPerWeek"`
	Equipment   []string `json:"equipment"`
	Notes       *string  `json:"notes,omitempty"`
}

type acceptPlanRequest struct {
	PlanID    string                 `json:"planId"`
	ProfileID string                 `json:"profileId"`
	Workouts  []generatedWorkoutWire `json:"workouts"`
}

// PlanningStatus reports whether the planning service is reachable and
// which provider backs it. Consulted before allowing generation.
func (c *Client) PlanningStatus(ctx context.Context) (*models.PlanningStatus, error) {
	var wire planningStatusWire
	if err := c.do(ctx, http.MethodGet, "/api/ai/planning/status", nil, true, &wire); err != nil {
		return nil, err
	}
	status := planningStatusFromWire(wire)
	return &status, nil
}

// GeneratePlan asks the backend to propose a plan for the given constraints.
// The response shape is validated before it is handed to callers.
func (c *Client) GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.GeneratedPlan, error) {
	if err := guardServerID(req.ProfileID); err != nil {
		return nil, err
	}
	body := generatePlanRequest{
		ProfileID:   req.ProfileID,
		Goal:        string(req.Goal),
		DaysPerWeek: req.DaysPerWeek,
		Equipment:   req.Equipment,
		Notes:       req.Notes,
	}
	var wire generatedPlanWire
	if err := c.do(ctx, http.MethodPost, "/api/ai/planning/generate", body, true, &wire); err != nil {
		return nil, err
	}
	plan := generatedPlanFromWire(wire)
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// PreviewPlan re-fetches a previously generated plan by ID.
func (c *Client) PreviewPlan(ctx context.Context, planID string) (*models.GeneratedPlan, error) {
	if planID == "" {
		return nil, fmt.Errorf("plan id is empty")
	}
	var wire generatedPlanWire
	path := fmt.Sprintf("/api/ai/planning/preview/%s", planID)
	if err := c.do(ctx, http.MethodGet, path, nil, true, &wire); err != nil {
		return nil, err
	}
	plan := generatedPlanFromWire(wire)
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// AcceptPlan turns a generated plan into real workouts for the profile.
func (c *Client) AcceptPlan(ctx context.Context, planID, profileID string, workouts []models.GeneratedWorkout) error {
	if err := guardServerID(profileID); err != nil {
		return err
	}
	if planID == "" {
		return fmt.Errorf("plan id is empty")
	}
	wireWorkouts := make([]generatedWorkoutWire, 0, len(workouts))
	for _, w := range workouts {
		wireWorkouts = append(wireWorkouts, generatedWorkoutToWire(w))
	}
	body := acceptPlanRequest{PlanID: planID, ProfileID: profileID, Workouts: wireWorkouts}
	return c.do(ctx, http.MethodPost, "/api/ai/planning/accept", body, true, nil)
}

// validatePlan checks that a plan response is structurally usable: an ID,
// at least one workout, and every workout named with at least one exercise.
func validatePlan(p *models.GeneratedPlan) error {
	if p.PlanID == "" {
		return fmt.Errorf("planning response missing plan id")
	}
	if len(p.Workouts) == 0 {
		return fmt.Errorf("planning response contains no workouts")
	}
	for i, w := range p.Workouts {
		if w.Name == "" {
			return fmt.Errorf("planning response workout %d has no name", i)
		}
		if len(w.Exercises) == 0 {
			return fmt.Errorf("planning response workout %q has no exercises", w.Name)
		}
	}
	return nil
}
