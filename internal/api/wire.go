// ABOUTME: Wire representations of backend resources and converters to domain models.
// ABOUTME: Converters are total and pure; nulls map to nil pointers, enums pass through uncast.
package api

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Timestamps are RFC 3339; measurement dates are plain calendar dates.
const dateLayout = "2006-01-02"

// parseTime parses an RFC 3339 timestamp, tolerating a bare date. A value
// that parses as neither yields the zero time; converters stay total.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}

type profileWire struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Age           *int     `json:"age"`
	Height        *float64 `json:"height"`
	CurrentWeight *float64 `json:"currentWeight"`
	GoalWeight    *float64 `json:"goalWeight"`
	AvatarURL     *string  `json:"avatarUrl"`
}

func profileFromWire(w profileWire) models.UserProfile {
	return models.UserProfile{
		ID:            w.ID,
		Name:          w.Name,
		Age:           w.Age,
		Height:        w.Height,
		CurrentWeight: w.CurrentWeight,
		GoalWeight:    w.GoalWeight,
		AvatarURL:     w.AvatarURL,
	}
}

func profileToWire(p models.UserProfile) profileWire {
	return profileWire{
		ID:            p.ID,
		Name:          p.Name,
		Age:           p.Age,
		Height:        p.Height,
		CurrentWeight: p.CurrentWeight,
		GoalWeight:    p.GoalWeight,
		AvatarURL:     p.AvatarURL,
	}
}

type exerciseWire struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscleGroup"`
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	Weight      *float64 `json:"weight"` // null means bodyweight, so no omitempty
	RestSeconds int      `json:"restSeconds"`
	Notes       *string  `json:"notes,omitempty"`
}

func exerciseFromWire(w exerciseWire) models.Exercise {
	return models.Exercise{
		ID:          w.ID,
		Name:        w.Name,
		MuscleGroup: models.MuscleGroup(w.MuscleGroup),
		Sets:        w.Sets,
		Reps:        w.Reps,
		Weight:      w.Weight,
		RestSeconds: w.RestSeconds,
		Notes:       w.Notes,
	}
}

// exerciseToWire builds the write payload. Local placeholder IDs are
// stripped so the server assigns real ones.
func exerciseToWire(e models.Exercise) exerciseWire {
	id := e.ID
	if models.IsLocalID(id) || !IsGUID(id) {
		id = ""
	}
	return exerciseWire{
		ID:          id,
		Name:        e.Name,
		MuscleGroup: string(e.MuscleGroup),
		Sets:        e.Sets,
		Reps:        e.Reps,
		Weight:      e.Weight,
		RestSeconds: e.RestSeconds,
		Notes:       e.Notes,
	}
}

type workoutWire struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Goal        string         `json:"goal"`
	Days        []string       `json:"days"`
	Exercises   []exerciseWire `json:"exercises"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
	IsCompleted *bool          `json:"isCompleted,omitempty"`
	CompletedAt *string        `json:"completedAt,omitempty"`
}

func workoutFromWire(w workoutWire) models.Workout {
	days := make([]models.DayOfWeek, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, models.DayOfWeek(d))
	}
	exercises := make([]models.Exercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, exerciseFromWire(e))
	}
	out := models.Workout{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Goal:        models.WorkoutGoal(w.Goal),
		Days:        days,
		Exercises:   exercises,
		CreatedAt:   parseTime(w.CreatedAt),
		UpdatedAt:   parseTime(w.UpdatedAt),
		CompletedAt: parseTimePtr(w.CompletedAt),
	}
	if w.IsCompleted != nil {
		out.IsCompleted = *w.IsCompleted
	}
	return out
}

// workoutToWire builds the create/update payload. Server-managed fields
// (id, timestamps, completion) are left out.
func workoutToWire(w models.Workout) workoutWire {
	days := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, string(d))
	}
	exercises := make([]exerciseWire, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, exerciseToWire(e))
	}
	return workoutWire{
		Name:        w.Name,
		Description: w.Description,
		Goal:        string(w.Goal),
		Days:        days,
		Exercises:   exercises,
	}
}

type bioimpedanceWire struct {
	ID                string  `json:"id,omitempty"`
	Date              string  `json:"date"`
	Weight            float64 `json:"weight"`
	BodyFatPercentage float64 `json:"bodyFatPercentage"`
	MuscleMass        float64 `json:"muscleMass"`
	BoneMass          float64 `json:"boneMass"`
	WaterPercentage   float64 `json:"waterPercentage"`
	VisceralFat       float64 `json:"visceralFat"`
	BMR               int     `json:"bmr"`
	MetabolicAge      int     `json:"metabolicAge"`
	Notes             *string `json:"notes,omitempty"`
}

func bioimpedanceFromWire(w bioimpedanceWire) models.BioimpedanceData {
	return models.BioimpedanceData{
		ID:                w.ID,
		Date:              parseTime(w.Date),
		Weight:            w.Weight,
		BodyFatPercentage: w.BodyFatPercentage,
		MuscleMass:        w.MuscleMass,
		BoneMass:          w.BoneMass,
		WaterPercentage:   w.WaterPercentage,
		VisceralFat:       w.VisceralFat,
		BMR:               w.BMR,
		MetabolicAge:      w.MetabolicAge,
		Notes:             w.Notes,
	}
}

func bioimpedanceToWire(b models.BioimpedanceData) bioimpedanceWire {
	return bioimpedanceWire{
		Date:              b.Date.Format(dateLayout),
		Weight:            b.Weight,
		BodyFatPercentage: b.BodyFatPercentage,
		MuscleMass:        b.MuscleMass,
		BoneMass:          b.BoneMass,
		WaterPercentage:   b.WaterPercentage,
		VisceralFat:       b.VisceralFat,
		BMR:               b.BMR,
		MetabolicAge:      b.MetabolicAge,
		Notes:             b.Notes,
	}
}

type waterEntryWire struct {
	ID         string  `json:"id"`
	AmountMl   int     `json:"amountMl"`
	ConsumedAt string  `json:"consumedAt"`
	Note       *string `json:"note,omitempty"`
}

func waterEntryFromWire(w waterEntryWire) models.WaterIntakeEntry {
	return models.WaterIntakeEntry{
		ID:         w.ID,
		AmountMl:   w.AmountMl,
		ConsumedAt: parseTime(w.ConsumedAt),
		Note:       w.Note,
	}
}

type waterSummaryWire struct {
	Date    string           `json:"date"`
	TotalMl int              `json:"totalMl"`
	GoalMl  int              `json:"goalMl"`
	Entries []waterEntryWire `json:"entries"`
}

func waterSummaryFromWire(w waterSummaryWire) models.DailyWaterSummary {
	entries := make([]models.WaterIntakeEntry, 0, len(w.Entries))
	for _, e := range w.Entries {
		entries = append(entries, waterEntryFromWire(e))
	}
	return models.DailyWaterSummary{
		Date:    w.Date,
		TotalMl: w.TotalMl,
		GoalMl:  w.GoalMl,
		Entries: entries,
	}
}

type completedWorkoutWire struct {
	ID              string `json:"id"`
	WorkoutID       string `json:"workoutId"`
	CompletedAt     string `json:"completedAt"`
	DurationSeconds int    `json:"durationSeconds"`
}

func completedWorkoutFromWire(w completedWorkoutWire) models.CompletedWorkout {
	return models.CompletedWorkout{
		ID:              w.ID,
		WorkoutID:       w.WorkoutID,
		CompletedAt:     parseTime(w.CompletedAt),
		DurationSeconds: w.DurationSeconds,
	}
}

type workoutStatsWire struct {
	TotalWorkoutsCompleted int `json:"totalWorkoutsCompleted"`
	WorkoutsThisWeek       int `json:"workoutsThisWeek"`
	TotalMinutesSpent      int `json:"totalMinutesSpent"`
}

func workoutStatsFromWire(w workoutStatsWire) models.WorkoutStats {
	return models.WorkoutStats(w)
}

type authUserWire struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	ProfileID *string `json:"profileId"`
}

func authUserFromWire(w authUserWire) models.AuthUser {
	return models.AuthUser{
		ID:        w.ID,
		Email:     w.Email,
		Name:      w.Name,
		ProfileID: w.ProfileID,
	}
}

type authResultWire struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      authUserWire `json:"user"`
}

func authResultFromWire(w authResultWire) models.AuthResult {
	return models.AuthResult{
		Token:     w.Token,
		ExpiresAt: parseTime(w.ExpiresAt),
		User:      authUserFromWire(w.User),
	}
}

type generatedWorkoutWire struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Goal        string         `json:"goal"`
	Days        []string       `json:"days"`
	Exercises   []exerciseWire `json:"exercises"`
}

func generatedWorkoutFromWire(w generatedWorkoutWire) models.GeneratedWorkout {
	days := make([]models.DayOfWeek, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, models.DayOfWeek(d))
	}
	exercises := make([]models.Exercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, exerciseFromWire(e))
	}
	return models.GeneratedWorkout{
		Name:        w.Name,
		Description: w.Description,
		Goal:        models.WorkoutGoal(w.Goal),
		Days:        days,
		Exercises:   exercises,
	}
}

func generatedWorkoutToWire(w models.GeneratedWorkout) generatedWorkoutWire {
	days := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, string(d))
	}
	exercises := make([]exerciseWire, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, exerciseToWire(e))
	}
	return generatedWorkoutWire{
		Name:        w.Name,
		Description: w.Description,
		Goal:        string(w.Goal),
		Days:        days,
		Exercises:   exercises,
	}
}

type generatedPlanWire struct {
	PlanID    string                 `json:"planId"`
	Summary   string                 `json:"summary"`
	Rationale string                 `json:"rationale"`
	Workouts  []generatedWorkoutWire `json:"workouts"`
}

func generatedPlanFromWire(w generatedPlanWire) models.GeneratedPlan {
	workouts := make([]models.GeneratedWorkout, 0, len(w.Workouts))
	for _, gw := range w.Workouts {
		workouts = append(workouts, generatedWorkoutFromWire(gw))
	}
	return models.GeneratedPlan{
		PlanID:    w.PlanID,
		Summary:   w.Summary,
		Rationale: w.Rationale,
		Workouts:  workouts,
	}
}

type planningStatusWire struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Endpoint  string `json:"endpoint"`
}

func planningStatusFromWire(w planningStatusWire) models.PlanningStatus {
	return models.PlanningStatus(w)
}
