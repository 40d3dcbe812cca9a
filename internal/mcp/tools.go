// ABOUTME: MCP tool implementations for fittrack.
// ABOUTME: Read tools serve from the store; mutations go through the server first.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List the user's workout plans, optionally filtered by goal",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout plan with all its exercises",
	}, s.handleGetWorkout)

	// workout_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_stats",
		Description: "Get aggregate completion stats (totals and this week)",
	}, s.handleWorkoutStats)

	// complete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Record a workout as completed",
	}, s.handleCompleteWorkout)

	// latest_bioimpedance
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_bioimpedance",
		Description: "Get the most recent body composition measurement",
	}, s.handleLatestBioimpedance)

	// water_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "water_today",
		Description: "Get today's water intake summary",
	}, s.handleWaterToday)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log a water intake entry for today",
	}, s.handleLogWater)
}

// Tool input/output types

type listWorkoutsInput struct {
	Goal string `json:"goal,omitempty" jsonschema:"Filter by goal (hypertrophy, strength, endurance, weight_loss, maintenance)"`
}

type workoutSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Goal           string   `json:"goal"`
	Days           []string `json:"days"`
	ExerciseCount  int      `json:"exercise_count"`
	CompletedToday bool     `json:"completed_today"`
}

type getWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout ID"`
}

type completeWorkoutInput struct {
	ID              string `json:"id" jsonschema:"Workout ID"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"How long the session took in minutes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type waterTodayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to query (YYYY-MM-DD); defaults to today"`
}

type logWaterInput struct {
	AmountMl int    `json:"amount_ml" jsonschema:"Amount of water in milliliters"`
	Note     string `json:"note,omitempty" jsonschema:"Optional note"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Goal != "" && !models.IsValidWorkoutGoal(input.Goal) {
		return nil, nil, fmt.Errorf("unknown goal: %s", input.Goal)
	}

	var out []workoutSummary
	for _, w := range s.store.Workouts() {
		if input.Goal != "" && string(w.Goal) != input.Goal {
			continue
		}
		days := make([]string, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, string(d))
		}
		out = append(out, workoutSummary{
			ID:             w.ID,
			Name:           w.Name,
			Goal:           string(w.Goal),
			Days:           days,
			ExerciseCount:  len(w.Exercises),
			CompletedToday: s.store.IsCompletedToday(w.ID),
		})
	}

	if len(out) == 0 {
		return nil, simpleOutput{Message: "No workouts found."}, nil
	}
	return nil, out, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input getWorkoutInput) (*mcp.CallToolResult, any, error) {
	w := s.store.WorkoutByID(input.ID)
	if w == nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}
	return nil, w, nil
}

func (s *Server) handleWorkoutStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.store.Stats(), nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	w := s.store.WorkoutByID(input.ID)
	if w == nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.ID)
	}

	record, err := s.store.CompleteWorkout(ctx, input.ID, input.DurationMinutes*60)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %q as completed at %s", w.Name, record.CompletedAt.Format(time.Kitchen)),
	}, nil
}

func (s *Server) handleLatestBioimpedance(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	history := s.store.BioimpedanceHistory()
	if len(history) == 0 {
		return nil, simpleOutput{Message: "No measurements recorded yet."}, nil
	}
	return nil, history[0], nil
}

func (s *Server) handleWaterToday(ctx context.Context, req *mcp.CallToolRequest, input waterTodayInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	summary, err := s.store.LoadWater(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load water intake: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, any, error) {
	if input.AmountMl <= 0 {
		return nil, nil, fmt.Errorf("amount_ml must be positive")
	}

	var note *string
	if input.Note != "" {
		note = &input.Note
	}

	summary, err := s.store.AddWater(ctx, input.AmountMl, note)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log water: %w", err)
	}
	return nil, summary, nil
}
