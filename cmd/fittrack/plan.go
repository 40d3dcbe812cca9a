// ABOUTME: CLI commands for AI workout plan generation.
// ABOUTME: Plans are generated server-side; the client validates and displays.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	planGoal      string
	planDays      int
	planEquipment []string
	planNotes     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate workout plans with AI",
	Long: `Generate a full workout plan from your profile and constraints.

The planning service runs on the backend. Generation returns a proposal;
nothing is saved until you accept it.

EXAMPLES:

  fittrack plan status
  fittrack plan generate --goal hypertrophy --days 3 --equipment barbell,dumbbell
  fittrack plan accept <plan-id>`,
}

var planStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check planning service availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		status, err := apiClient.PlanningStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to check planning status: %w", err)
		}

		if !status.Available {
			color.Yellow("Planning service is unavailable")
			return nil
		}
		color.Green("✓ Planning service available")
		fmt.Printf("  provider: %s  model: %s\n", status.Provider, status.Model)
		return nil
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan proposal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		pid, ok := sessionMgr.ProfileID()
		if !ok {
			return fmt.Errorf("no training profile yet; run 'fittrack profile create <name>' first")
		}
		if !models.IsValidWorkoutGoal(planGoal) {
			return fmt.Errorf("unknown goal: %s", planGoal)
		}

		req := models.PlanRequest{
			ProfileID:   pid,
			Goal:        models.WorkoutGoal(planGoal),
			DaysPerWeek: planDays,
			Equipment:   planEquipment,
		}
		if planNotes != "" {
			req.Notes = &planNotes
		}

		fmt.Println("Generating plan...")
		plan, err := apiClient.GeneratePlan(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("plan generation failed: %w", err)
		}

		printPlan(plan)
		fmt.Printf("\nAccept with: fittrack plan accept %s\n", plan.PlanID)
		return nil
	},
}

var planAcceptCmd = &cobra.Command{
	Use:   "accept <plan-id>",
	Short: "Accept a generated plan",
	Long: `Accept a generated plan, saving its workouts to your profile.

The plan ID comes from 'fittrack plan generate'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		pid, ok := sessionMgr.ProfileID()
		if !ok {
			return fmt.Errorf("no training profile yet; run 'fittrack profile create <name>' first")
		}

		plan, err := apiClient.PreviewPlan(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}

		if err := apiClient.AcceptPlan(cmd.Context(), plan.PlanID, pid, plan.Workouts); err != nil {
			return fmt.Errorf("failed to accept plan: %w", err)
		}

		color.Green("✓ Plan accepted: %d workouts added", len(plan.Workouts))
		fmt.Println("See them with: fittrack workout list")
		return nil
	},
}

func printPlan(plan *models.GeneratedPlan) {
	faint := color.New(color.Faint)
	fmt.Printf("\n%s  %s\n", plan.Summary, faint.Sprint(plan.PlanID))
	if plan.Rationale != "" {
		fmt.Printf("%s\n", faint.Sprint(plan.Rationale))
	}
	for _, w := range plan.Workouts {
		days := make([]string, len(w.Days))
		for i, d := range w.Days {
			days[i] = string(d)[:3]
		}
		fmt.Printf("\n  %s  %s\n", w.Name, faint.Sprint(strings.Join(days, ",")))
		for _, e := range w.Exercises {
			load := "bodyweight"
			if e.Weight != nil {
				load = fmt.Sprintf("%.1f kg", *e.Weight)
			}
			fmt.Printf("    %s %dx%d @ %s\n", padRight(e.Name, 24), e.Sets, e.Reps, load)
		}
	}
}

func init() {
	planGenerateCmd.Flags().StringVar(&planGoal, "goal", "hypertrophy", "training goal")
	planGenerateCmd.Flags().IntVar(&planDays, "days", 3, "training days per week")
	planGenerateCmd.Flags().StringSliceVar(&planEquipment, "equipment", nil, "available equipment (comma-separated)")
	planGenerateCmd.Flags().StringVar(&planNotes, "notes", "", "free-form constraints for the planner")

	planCmd.AddCommand(planStatusCmd, planGenerateCmd, planAcceptCmd)
	rootCmd.AddCommand(planCmd)
}
