// ABOUTME: CLI commands for workout plans and completions.
// ABOUTME: Covers list, show, add, exercise, edit, delete, complete, today.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	workoutGoal     string
	workoutDays     []string
	workoutDesc     string
	workoutName     string
	exerciseMuscle  string
	exerciseSets    int
	exerciseReps    int
	exerciseWeight  float64
	exerciseRest    int
	exerciseNotes   string
	completeMinutes int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout plans",
	Long: `Manage your workout plans and record completed sessions.

COMMANDS:

  list       List all plans
  show       Show a plan with its exercises
  add        Create a plan
  exercise   Add an exercise to a plan
  edit       Rename a plan or change its schedule
  delete     Delete a plan
  complete   Record a plan as completed
  today      Show plans scheduled for today

GOALS:

  hypertrophy, strength, endurance, weight_loss, maintenance

EXAMPLES:

  fittrack workout add "Push Day" --goal hypertrophy --days monday,thursday
  fittrack workout exercise <id> "Bench Press" --muscle chest --sets 4 --reps 8 --weight 80
  fittrack workout complete <id> --minutes 45`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		workouts := appStore.Workouts()
		if len(workouts) == 0 {
			fmt.Println("No workouts yet. Create one with: fittrack workout add <name>")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			mark := " "
			if appStore.IsCompletedToday(w.ID) {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %s %s\n",
				mark,
				faint.Sprint(shortID(w.ID)),
				padRight(w.Name, 24),
				padRight(string(w.Goal), 12),
				faint.Sprint(dayList(w.Days)))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a plan with its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", w.Name, faint.Sprint(w.ID))
		fmt.Printf("  goal: %s   days: %s\n", w.Goal, dayList(w.Days))
		if w.Description != nil {
			fmt.Printf("  %s\n", *w.Description)
		}
		if appStore.IsCompletedToday(w.ID) {
			color.Green("  completed today")
		}

		if len(w.Exercises) == 0 {
			fmt.Println("\n  no exercises yet")
			return nil
		}
		fmt.Println()
		for _, e := range w.Exercises {
			load := "bodyweight"
			if e.Weight != nil {
				load = fmt.Sprintf("%.1f kg", *e.Weight)
			}
			fmt.Printf("  %s %dx%d @ %s %s\n",
				padRight(e.Name, 24), e.Sets, e.Reps, load,
				faint.Sprintf("(%s, rest %ds)", e.MuscleGroup, e.RestSeconds))
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a workout plan",
	Long: `Create a workout plan. Add exercises afterwards with
'fittrack workout exercise'.

Examples:
  fittrack workout add "Push Day" --goal hypertrophy --days monday,thursday
  fittrack workout add "Easy Run" --goal endurance --days sunday --desc "Zone 2"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		if !models.IsValidWorkoutGoal(workoutGoal) {
			return fmt.Errorf("unknown goal: %s\nValid goals: hypertrophy, strength, endurance, weight_loss, maintenance", workoutGoal)
		}
		days, err := parseDays(workoutDays)
		if err != nil {
			return err
		}

		w := models.NewWorkout(args[0], models.WorkoutGoal(workoutGoal)).WithDays(days...)
		if workoutDesc != "" {
			w.WithDescription(workoutDesc)
		}

		created, err := appStore.AddWorkout(cmd.Context(), *w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added %s", created.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(created.ID))
		return nil
	},
}

var workoutExerciseCmd = &cobra.Command{
	Use:   "exercise <workout-id> <name>",
	Short: "Add an exercise to a plan",
	Long: `Add an exercise to an existing workout plan.

Omit --weight for bodyweight exercises.

Examples:
  fittrack workout exercise abc123 "Bench Press" --muscle chest --sets 4 --reps 8 --weight 80
  fittrack workout exercise abc123 "Pull-ups" --muscle back --sets 3 --reps 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}
		if !models.IsValidMuscleGroup(exerciseMuscle) {
			return fmt.Errorf("unknown muscle group: %s\nValid groups: %s", exerciseMuscle, muscleGroupList())
		}

		e := models.NewExercise(args[1], models.MuscleGroup(exerciseMuscle), exerciseSets, exerciseReps)
		if cmd.Flags().Changed("weight") {
			e.WithWeight(exerciseWeight)
		}
		if exerciseRest > 0 {
			e.WithRest(exerciseRest)
		}
		if exerciseNotes != "" {
			e.WithNotes(exerciseNotes)
		}

		edit := *w
		edit.AddExercise(e)
		if _, err := appStore.UpdateWorkout(cmd.Context(), edit); err != nil {
			return fmt.Errorf("failed to save exercise: %w", err)
		}

		color.Green("✓ Added %s to %s", args[1], w.Name)
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rename a plan or change its schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		edit := *w
		if workoutName != "" {
			edit.Name = workoutName
		}
		if cmd.Flags().Changed("goal") {
			if !models.IsValidWorkoutGoal(workoutGoal) {
				return fmt.Errorf("unknown goal: %s", workoutGoal)
			}
			edit.Goal = models.WorkoutGoal(workoutGoal)
		}
		if cmd.Flags().Changed("days") {
			days, err := parseDays(workoutDays)
			if err != nil {
				return err
			}
			edit.WithDays(days...)
		}
		if cmd.Flags().Changed("desc") {
			edit.WithDescription(workoutDesc)
		}

		updated, err := appStore.UpdateWorkout(cmd.Context(), edit)
		if err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		color.Green("✓ Updated %s", updated.Name)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteWorkout(cmd.Context(), w.ID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		color.Green("✓ Deleted %s", w.Name)
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:     "complete <id>",
	Aliases: []string{"done"},
	Short:   "Record a plan as completed",
	Long: `Record a workout as completed right now.

Examples:
  fittrack workout complete abc123
  fittrack workout complete abc123 --minutes 45`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		record, err := appStore.CompleteWorkout(cmd.Context(), w.ID, completeMinutes*60)
		if err != nil {
			if record != nil {
				// The completion itself went through.
				color.Yellow("⚠ %s", appStore.Err())
				return nil
			}
			return fmt.Errorf("failed to record workout: %w", err)
		}

		color.Green("✓ Completed %s", w.Name)
		stats := appStore.Stats()
		fmt.Printf("  %d total, %d this week\n",
			stats.TotalWorkoutsCompleted, stats.WorkoutsThisWeek)
		return nil
	},
}

var workoutTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show plans scheduled for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		today := models.DayOfWeek(strings.ToLower(nowFn().Weekday().String()))
		found := false
		faint := color.New(color.Faint)
		for _, w := range appStore.Workouts() {
			if !hasDay(w.Days, today) {
				continue
			}
			found = true
			mark := " "
			if appStore.IsCompletedToday(w.ID) {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s\n", mark, faint.Sprint(shortID(w.ID)), w.Name)
		}
		if !found {
			fmt.Println("Nothing scheduled for today.")
		}
		return nil
	},
}

// findWorkout resolves a full or prefix workout ID.
func findWorkout(id string) (*models.Workout, error) {
	if w := appStore.WorkoutByID(id); w != nil {
		return w, nil
	}
	var match *models.Workout
	for _, w := range appStore.Workouts() {
		if strings.HasPrefix(w.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous workout ID prefix: %s", id)
			}
			w := w
			match = &w
		}
	}
	if match == nil {
		return nil, fmt.Errorf("workout not found: %s", id)
	}
	return match, nil
}

func parseDays(raw []string) ([]models.DayOfWeek, error) {
	var days []models.DayOfWeek
	for _, chunk := range raw {
		for _, s := range strings.Split(chunk, ",") {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if !models.IsValidDayOfWeek(s) {
				return nil, fmt.Errorf("unknown day: %s", s)
			}
			days = append(days, models.DayOfWeek(s))
		}
	}
	return days, nil
}

func hasDay(days []models.DayOfWeek, d models.DayOfWeek) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

func dayList(days []models.DayOfWeek) string {
	if len(days) == 0 {
		return "unscheduled"
	}
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)[:3]
	}
	return strings.Join(out, ",")
}

func muscleGroupList() string {
	out := make([]string, len(models.AllMuscleGroups))
	for i, g := range models.AllMuscleGroups {
		out[i] = string(g)
	}
	return strings.Join(out, ", ")
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutGoal, "goal", "hypertrophy", "training goal")
	workoutAddCmd.Flags().StringSliceVar(&workoutDays, "days", nil, "scheduled days (comma-separated)")
	workoutAddCmd.Flags().StringVar(&workoutDesc, "desc", "", "description")

	workoutExerciseCmd.Flags().StringVar(&exerciseMuscle, "muscle", "", "muscle group")
	workoutExerciseCmd.Flags().IntVar(&exerciseSets, "sets", 3, "number of sets")
	workoutExerciseCmd.Flags().IntVar(&exerciseReps, "reps", 10, "reps per set")
	workoutExerciseCmd.Flags().Float64Var(&exerciseWeight, "weight", 0, "working weight in kg (omit for bodyweight)")
	workoutExerciseCmd.Flags().IntVar(&exerciseRest, "rest", 0, "rest between sets in seconds")
	workoutExerciseCmd.Flags().StringVar(&exerciseNotes, "notes", "", "exercise notes")

	workoutEditCmd.Flags().StringVar(&workoutName, "name", "", "new name")
	workoutEditCmd.Flags().StringVar(&workoutGoal, "goal", "", "training goal")
	workoutEditCmd.Flags().StringSliceVar(&workoutDays, "days", nil, "scheduled days")
	workoutEditCmd.Flags().StringVar(&workoutDesc, "desc", "", "description")

	workoutCompleteCmd.Flags().IntVar(&completeMinutes, "minutes", 0, "session duration in minutes")

	workoutCmd.AddCommand(workoutListCmd, workoutShowCmd, workoutAddCmd,
		workoutExerciseCmd, workoutEditCmd, workoutDeleteCmd,
		workoutCompleteCmd, workoutTodayCmd)
	rootCmd.AddCommand(workoutCmd)
}
