// ABOUTME: CLI commands for daily water intake.
// ABOUTME: Totals come from the server; the client never sums entries itself.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/api"
)

var (
	waterDate string
	waterNote string
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
	Long: `Track water intake against your daily goal.

EXAMPLES:

  fittrack water add 250            # Log a glass
  fittrack water                    # Today's total and entries
  fittrack water show --date 2025-03-01
  fittrack water delete <entry-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showWater(cmd)
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showWater(cmd)
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Log a drink",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		amount, err := strconv.Atoi(args[0])
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount: %s (milliliters, must be positive)", args[0])
		}

		var note *string
		if waterNote != "" {
			note = &waterNote
		}

		summary, err := appStore.AddWater(cmd.Context(), amount, note)
		if err != nil {
			return fmt.Errorf("failed to log water: %w", err)
		}

		color.Green("✓ Logged %d ml", amount)
		fmt.Printf("  %d / %d ml today\n", summary.TotalMl, summary.GoalMl)
		return nil
	},
}

var waterDeleteCmd = &cobra.Command{
	Use:     "delete <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an intake entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		date := waterDate
		if date == "" {
			date = api.WaterDate(nowFn())
		}

		// Resolve a prefix against the loaded day if possible.
		id := args[0]
		if s := appStore.Water(); s != nil {
			for _, e := range s.Entries {
				if len(id) < len(e.ID) && e.ID[:len(id)] == id {
					id = e.ID
					break
				}
			}
		}

		if err := appStore.DeleteWater(cmd.Context(), id, date); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		color.Green("✓ Deleted entry %s", shortID(id))
		return nil
	},
}

func showWater(cmd *cobra.Command) error {
	if err := loadStore(cmd); err != nil {
		return err
	}

	date := waterDate
	if date == "" {
		date = api.WaterDate(nowFn())
	}

	summary, err := appStore.LoadWater(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("failed to load water intake: %w", err)
	}

	fmt.Printf("%s  %d / %d ml\n", summary.Date, summary.TotalMl, summary.GoalMl)
	if summary.TotalMl >= summary.GoalMl && summary.GoalMl > 0 {
		color.Green("  goal reached")
	}

	faint := color.New(color.Faint)
	for _, e := range summary.Entries {
		note := ""
		if e.Note != nil && *e.Note != "" {
			note = faint.Sprintf(" (%s)", truncate(*e.Note, 30))
		}
		fmt.Printf("  %s %s %5d ml%s\n",
			faint.Sprint(shortID(e.ID)),
			e.ConsumedAt.Local().Format("15:04"),
			e.AmountMl,
			note)
	}
	return nil
}

func init() {
	waterCmd.PersistentFlags().StringVar(&waterDate, "date", "", "day to show (YYYY-MM-DD), defaults to today")
	waterAddCmd.Flags().StringVar(&waterNote, "note", "", "note for the entry")

	waterCmd.AddCommand(waterShowCmd, waterAddCmd, waterDeleteCmd)
	rootCmd.AddCommand(waterCmd)
}
