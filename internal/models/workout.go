// ABOUTME: Workout and Exercise models with muscle group, goal, and day enums.
// ABOUTME: Workouts own an ordered list of exercises and a set of training days.
package models

import (
	"time"
)

// MuscleGroup identifies the primary muscle group an exercise targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleBiceps    MuscleGroup = "biceps"
	MuscleTriceps   MuscleGroup = "triceps"
	MuscleLegs      MuscleGroup = "legs"
	MuscleGlutes    MuscleGroup = "glutes"
	MuscleAbs       MuscleGroup = "abs"
	MuscleCardio    MuscleGroup = "cardio"
)

// AllMuscleGroups returns all valid muscle groups in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps,
	MuscleTriceps, MuscleLegs, MuscleGlutes, MuscleAbs, MuscleCardio,
}

// MuscleGroupLabels maps muscle groups to display names.
var MuscleGroupLabels = map[MuscleGroup]string{
	MuscleChest:     "Chest",
	MuscleBack:      "Back",
	MuscleShoulders: "Shoulders",
	MuscleBiceps:    "Biceps",
	MuscleTriceps:   "Triceps",
	MuscleLegs:      "Legs",
	MuscleGlutes:    "Glutes",
	MuscleAbs:       "Abs",
	MuscleCardio:    "Cardio",
}

// IsValidMuscleGroup checks if a string is a valid muscle group.
func IsValidMuscleGroup(s string) bool {
	for _, mg := range AllMuscleGroups {
		if string(mg) == s {
			return true
		}
	}
	return false
}

// WorkoutGoal represents the training goal of a workout.
type WorkoutGoal string

const (
	GoalHypertrophy WorkoutGoal = "hypertrophy"
	GoalStrength    WorkoutGoal = "strength"
	GoalEndurance   WorkoutGoal = "endurance"
	GoalWeightLoss  WorkoutGoal = "weight_loss"
	GoalMaintenance WorkoutGoal = "maintenance"
)

// AllWorkoutGoals returns all valid workout goals.
var AllWorkoutGoals = []WorkoutGoal{
	GoalHypertrophy, GoalStrength, GoalEndurance, GoalWeightLoss, GoalMaintenance,
}

// WorkoutGoalLabels maps goals to display names.
var WorkoutGoalLabels = map[WorkoutGoal]string{
	GoalHypertrophy: "Hypertrophy",
	GoalStrength:    "Strength",
	GoalEndurance:   "Endurance",
	GoalWeightLoss:  "Weight loss",
	GoalMaintenance: "Maintenance",
}

// IsValidWorkoutGoal checks if a string is a valid workout goal.
func IsValidWorkoutGoal(s string) bool {
	for _, g := range AllWorkoutGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// DayOfWeek is a training day. Wire values are lowercase English day names.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// AllDaysOfWeek returns the days of the week Monday first, the order
// schedules are rendered in.
var AllDaysOfWeek = []DayOfWeek{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// DayLabels maps days to short display names.
var DayLabels = map[DayOfWeek]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// IsValidDayOfWeek checks if a string is a valid day name.
func IsValidDayOfWeek(s string) bool {
	for _, d := range AllDaysOfWeek {
		if string(d) == s {
			return true
		}
	}
	return false
}

// SortDays returns the given days deduplicated and ordered Monday first.
func SortDays(days []DayOfWeek) []DayOfWeek {
	seen := make(map[DayOfWeek]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}
	var out []DayOfWeek
	for _, d := range AllDaysOfWeek {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// Exercise is a single exercise within a workout. Weight nil means bodyweight.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup MuscleGroup
	Sets        int
	Reps        int
	Weight      *float64
	RestSeconds int
	Notes       *string
}

// NewExercise creates an exercise with a local placeholder ID. The ID is
// replaced by a server-assigned one when the owning workout is saved.
func NewExercise(name string, muscleGroup MuscleGroup, sets, reps int) *Exercise {
	return &Exercise{
		ID:          NewLocalID(),
		Name:        name,
		MuscleGroup: muscleGroup,
		Sets:        sets,
		Reps:        reps,
	}
}

// WithWeight sets the working weight in kilograms.
func (e *Exercise) WithWeight(kg float64) *Exercise {
	e.Weight = &kg
	return e
}

// WithRest sets the rest period between sets.
func (e *Exercise) WithRest(seconds int) *Exercise {
	e.RestSeconds = seconds
	return e
}

// WithNotes sets notes on the exercise.
func (e *Exercise) WithNotes(notes string) *Exercise {
	e.Notes = &notes
	return e
}

// IsBodyweight reports whether the exercise has no external load.
func (e *Exercise) IsBodyweight() bool {
	return e.Weight == nil
}

// Workout is a training plan entry. Exercise order is significant; Days
// holds no duplicates.
type Workout struct {
	ID          string
	Name        string
	Description *string
	Goal        WorkoutGoal
	Days        []DayOfWeek
	Exercises   []Exercise
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsCompleted bool
	CompletedAt *time.Time
}

// NewWorkout creates a workout with a local placeholder ID and no exercises.
func NewWorkout(name string, goal WorkoutGoal) *Workout {
	now := time.Now()
	return &Workout{
		ID:        NewLocalID(),
		Name:      name,
		Goal:      goal,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithDescription sets the workout description.
func (w *Workout) WithDescription(desc string) *Workout {
	w.Description = &desc
	return w
}

// WithDays sets the training days, deduplicated and ordered Monday first.
func (w *Workout) WithDays(days ...DayOfWeek) *Workout {
	w.Days = SortDays(days)
	return w
}

// AddExercise appends an exercise, preserving insertion order.
func (w *Workout) AddExercise(e *Exercise) *Workout {
	w.Exercises = append(w.Exercises, *e)
	return w
}
