// ABOUTME: Tests for AI planning endpoints.
// ABOUTME: Focuses on response shape validation before plans reach the UI.
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func planServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestGeneratePlanValidShape(t *testing.T) {
	ts := planServer(t, `{
		"planId": "plan-42",
		"summary": "3-day hypertrophy split",
		"rationale": "Volume balanced across push, pull, legs.",
		"workouts": [{
			"name": "Push",
			"goal": "hypertrophy",
			"days": ["monday"],
			"exercises": [{"name": "Bench Press", "muscleGroup": "chest", "sets": 4, "reps": 8, "weight": 60, "restSeconds": 90}]
		}]
	}`)
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))
	plan, err := c.GeneratePlan(context.Background(), models.PlanRequest{
		ProfileID:   testProfileID,
		Goal:        models.GoalHypertrophy,
		DaysPerWeek: 3,
		Equipment:   []string{"barbell", "dumbbells"},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.PlanID != "plan-42" {
		t.Errorf("PlanID = %q", plan.PlanID)
	}
	if len(plan.Workouts) != 1 || plan.Workouts[0].Name != "Push" {
		t.Errorf("workouts = %+v", plan.Workouts)
	}
}

func TestGeneratePlanRejectsMalformedShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing plan id", `{"summary": "s", "rationale": "r", "workouts": [{"name": "W", "goal": "strength", "days": [], "exercises": [{"name": "Row", "muscleGroup": "back", "sets": 3, "reps": 10, "weight": null, "restSeconds": 60}]}]}`},
		{"no workouts", `{"planId": "p", "summary": "s", "rationale": "r", "workouts": []}`},
		{"unnamed workout", `{"planId": "p", "summary": "s", "rationale": "r", "workouts": [{"name": "", "goal": "strength", "days": [], "exercises": [{"name": "Row", "muscleGroup": "back", "sets": 3, "reps": 10, "weight": null, "restSeconds": 60}]}]}`},
		{"workout without exercises", `{"planId": "p", "summary": "s", "rationale": "r", "workouts": [{"name": "W", "goal": "strength", "days": [], "exercises": []}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := planServer(t, tc.body)
			defer ts.Close()

			c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))
			if _, err := c.GeneratePlan(context.Background(), models.PlanRequest{
				ProfileID: testProfileID,
				Goal:      models.GoalStrength,
			}); err == nil {
				t.Error("expected shape validation error")
			}
		})
	}
}

func TestPlanningStatus(t *testing.T) {
	ts := planServer(t, `{"available": true, "provider": "openai", "model": "gpt-4o-mini", "endpoint": "/api/ai/planning"}`)
	defer ts.Close()

	c := New(ts.URL, &staticTokens{token: "tok"}, WithHTTPClient(ts.Client()))
	status, err := c.PlanningStatus(context.Background())
	if err != nil {
		t.Fatalf("PlanningStatus: %v", err)
	}
	if !status.Available || status.Provider != "openai" {
		t.Errorf("status = %+v", status)
	}
}
