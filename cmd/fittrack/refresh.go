// ABOUTME: CLI command forcing a fresh hydration from the backend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch all training data from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if _, ok := sessionMgr.ProfileID(); !ok {
			return fmt.Errorf("no training profile yet; run 'fittrack profile create <name>' first")
		}

		if err := appStore.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("%s", appStore.Err())
		}

		color.Green("✓ Refreshed")
		fmt.Printf("  %d workouts, %d measurements, %d completions\n",
			len(appStore.Workouts()),
			len(appStore.BioimpedanceHistory()),
			len(appStore.CompletedWorkouts()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
