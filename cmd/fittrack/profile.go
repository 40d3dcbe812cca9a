// ABOUTME: CLI commands for the training profile.
// ABOUTME: Create binds the new profile ID to the session.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	profileAge        int
	profileHeight     float64
	profileWeight     float64
	profileGoalWeight float64
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage your training profile",
	Long: `View and edit your training profile.

The profile holds your body measurements and owns all training data.
Every account has at most one profile.

COMMANDS:

  show      Display the current profile
  create    Create a profile (required before any tracking)
  edit      Update measurements`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		p := appStore.Profile()
		if p == nil {
			fmt.Println("No profile found.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", p.Name, faint.Sprint(p.ID))
		printOptInt("age", p.Age, "years")
		printOptFloat("height", p.Height, "cm")
		printOptFloat("weight", p.CurrentWeight, "kg")
		printOptFloat("goal weight", p.GoalWeight, "kg")
		return nil
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create your training profile",
	Long: `Create the training profile for the signed-in account.

Examples:
  fittrack profile create "Sam"
  fittrack profile create "Sam" --age 34 --height 180 --weight 82.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if _, ok := sessionMgr.ProfileID(); ok {
			return fmt.Errorf("a profile already exists; use 'fittrack profile edit'")
		}

		p := models.NewUserProfile(args[0])
		applyProfileFlags(cmd, p)

		created, err := appStore.CreateProfile(cmd.Context(), *p, sessionMgr)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		color.Green("✓ Profile created: %s", created.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(created.ID))
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update profile measurements",
	Long: `Update profile measurements. Only provided flags change.

Examples:
  fittrack profile edit --weight 81.3
  fittrack profile edit --age 35 --goal-weight 78`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		p := appStore.Profile()
		if p == nil {
			return fmt.Errorf("no profile found")
		}

		edit := *p
		applyProfileFlags(cmd, &edit)

		updated, err := appStore.UpdateProfile(cmd.Context(), edit)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		color.Green("✓ Profile updated: %s", updated.Name)
		return nil
	},
}

func applyProfileFlags(cmd *cobra.Command, p *models.UserProfile) {
	if cmd.Flags().Changed("age") {
		p.WithAge(profileAge)
	}
	if cmd.Flags().Changed("height") {
		p.WithHeight(profileHeight)
	}
	if cmd.Flags().Changed("weight") {
		p.WithCurrentWeight(profileWeight)
	}
	if cmd.Flags().Changed("goal-weight") {
		p.WithGoalWeight(profileGoalWeight)
	}
}

func printOptInt(label string, v *int, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("  %s %d %s\n", padRight(label+":", 13), *v, unit)
}

func printOptFloat(label string, v *float64, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("  %s %.1f %s\n", padRight(label+":", 13), *v, unit)
}

func profileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	cmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&profileWeight, "weight", 0, "current weight in kg")
	cmd.Flags().Float64Var(&profileGoalWeight, "goal-weight", 0, "goal weight in kg")
}

func init() {
	profileFlags(profileCreateCmd)
	profileFlags(profileEditCmd)
	profileCmd.AddCommand(profileShowCmd, profileCreateCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
