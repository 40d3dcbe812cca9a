// ABOUTME: AI-generated workout plan models.
// ABOUTME: Plans are produced by the backend planning service; the client only validates shape.
package models

// GeneratedWorkout is one workout proposed by the planning service. It has
// no ID until accepted; the server assigns IDs on accept.
type GeneratedWorkout struct {
	Name        string
	Description *string
	Goal        WorkoutGoal
	Days        []DayOfWeek
	Exercises   []Exercise
}

// GeneratedPlan is a complete plan proposal.
type GeneratedPlan struct {
	PlanID    string
	Summary   string
	Rationale string
	Workouts  []GeneratedWorkout
}

// PlanningStatus reports availability of the planning service.
type PlanningStatus struct {
	Available bool
	Provider  string
	Model     string
	Endpoint  string
}

// PlanRequest carries the user's constraints for plan generation.
type PlanRequest struct {
	ProfileID   string
	Goal        WorkoutGoal
	DaysPerWeek int
	Equipment   []string
	Notes       *string
}
