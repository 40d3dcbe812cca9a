// ABOUTME: CompletedWorkout record and server-side aggregate stats.
// ABOUTME: Records are append-only from the client's perspective.
package models

import "time"

// CompletedWorkout records one finished workout session. WorkoutID is a
// relation, not ownership; the workout may have been deleted since.
type CompletedWorkout struct {
	ID              string
	WorkoutID       string
	CompletedAt     time.Time
	DurationSeconds int
}

// WorkoutStats is the server-aggregated completion summary. The client
// replaces it wholesale after any action that could change it.
type WorkoutStats struct {
	TotalWorkoutsCompleted int
	WorkoutsThisWeek       int
	TotalMinutesSpent      int
}
