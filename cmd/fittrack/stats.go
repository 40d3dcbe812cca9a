// ABOUTME: CLI command for aggregate completion stats.
// ABOUTME: Values are server-computed; this only formats them.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout completion stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		stats := appStore.Stats()
		faint := color.New(color.Faint)

		fmt.Printf("%s %d\n", padRight("completed:", 14), stats.TotalWorkoutsCompleted)
		fmt.Printf("%s %d\n", padRight("this week:", 14), stats.WorkoutsThisWeek)
		hours := stats.TotalMinutesSpent / 60
		mins := stats.TotalMinutesSpent % 60
		fmt.Printf("%s %dh %02dm %s\n", padRight("time spent:", 14), hours, mins,
			faint.Sprintf("(%d min)", stats.TotalMinutesSpent))

		recent := appStore.CompletedWorkouts()
		if len(recent) == 0 {
			return nil
		}
		if len(recent) > 5 {
			recent = recent[:5]
		}
		fmt.Println("\nrecent:")
		for _, r := range recent {
			name := r.WorkoutID
			if w := appStore.WorkoutByID(r.WorkoutID); w != nil {
				name = w.Name
			} else {
				name = faint.Sprintf("deleted plan %s", shortID(r.WorkoutID))
			}
			fmt.Printf("  %s %s %s\n",
				faint.Sprint(r.CompletedAt.Local().Format("2006-01-02 15:04")),
				padRight(name, 24),
				faint.Sprintf("%d min", r.DurationSeconds/60))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
