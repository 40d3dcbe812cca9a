// ABOUTME: CLI commands for bioimpedance measurements.
// ABOUTME: Supports list, add, and delete; newest measurement first.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/harperreed/fittrack/internal/models"
)

var (
	bioDate   string
	bioFat    float64
	bioMuscle float64
	bioBone   float64
	bioWater  float64
	bioVisc   float64
	bioBMR    int
	bioMetAge int
	bioNotes  string
	bioLimit  int
)

var bioCmd = &cobra.Command{
	Use:     "bio",
	Aliases: []string{"b"},
	Short:   "Track body composition measurements",
	Long: `Track bioimpedance scale readings.

Each reading records weight plus optional composition values (body fat,
muscle mass, bone mass, water percentage, visceral fat, BMR, metabolic
age).

EXAMPLES:

  fittrack bio add 82.5
  fittrack bio add 82.5 --fat 18.2 --muscle 36.1 --bmr 1800
  fittrack bio add 83.1 --date 2025-03-01
  fittrack bio list`,
}

var bioListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List measurements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		history := appStore.BioimpedanceHistory()
		if len(history) == 0 {
			fmt.Println("No measurements yet. Add one with: fittrack bio add <weight>")
			return nil
		}
		if bioLimit > 0 && len(history) > bioLimit {
			history = history[:bioLimit]
		}

		faint := color.New(color.Faint)
		for _, b := range history {
			extras := []string{}
			if b.BodyFatPercentage > 0 {
				extras = append(extras, fmt.Sprintf("fat %.1f%%", b.BodyFatPercentage))
			}
			if b.MuscleMass > 0 {
				extras = append(extras, fmt.Sprintf("muscle %.1fkg", b.MuscleMass))
			}
			if b.BMR > 0 {
				extras = append(extras, fmt.Sprintf("bmr %d", b.BMR))
			}
			fmt.Printf("%s %s %6.1f kg  %s\n",
				faint.Sprint(shortID(b.ID)),
				b.Date.Format("2006-01-02"),
				b.Weight,
				faint.Sprint(strings.Join(extras, "  ")))
		}
		return nil
	},
}

var bioAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		b := models.NewBioimpedance(weight)
		if bioDate != "" {
			d, err := time.Parse("2006-01-02", bioDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", bioDate)
			}
			b.WithDate(d)
		}
		b.BodyFatPercentage = bioFat
		b.MuscleMass = bioMuscle
		b.BoneMass = bioBone
		b.WaterPercentage = bioWater
		b.VisceralFat = bioVisc
		b.BMR = bioBMR
		b.MetabolicAge = bioMetAge
		if bioNotes != "" {
			b.WithNotes(bioNotes)
		}

		created, err := appStore.AddBioimpedance(cmd.Context(), *b)
		if err != nil {
			return fmt.Errorf("failed to record measurement: %w", err)
		}

		color.Green("✓ Recorded %.1f kg on %s", created.Weight, created.Date.Format("2006-01-02"))
		return nil
	},
}

var bioLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent measurement in full",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		pid, ok := sessionMgr.ProfileID()
		if !ok {
			return fmt.Errorf("no training profile yet; run 'fittrack profile create <name>' first")
		}

		b, err := apiClient.LatestBioimpedance(cmd.Context(), pid)
		if err != nil {
			if api.StatusOf(err) == 404 {
				fmt.Println("No measurements yet.")
				return nil
			}
			return fmt.Errorf("failed to load latest measurement: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", b.Date.Format("2006-01-02"), faint.Sprint(b.ID))
		fmt.Printf("  %s %.1f kg\n", padRight("weight:", 15), b.Weight)
		if b.BodyFatPercentage > 0 {
			fmt.Printf("  %s %.1f %%\n", padRight("body fat:", 15), b.BodyFatPercentage)
		}
		if b.MuscleMass > 0 {
			fmt.Printf("  %s %.1f kg\n", padRight("muscle mass:", 15), b.MuscleMass)
		}
		if b.BoneMass > 0 {
			fmt.Printf("  %s %.1f kg\n", padRight("bone mass:", 15), b.BoneMass)
		}
		if b.WaterPercentage > 0 {
			fmt.Printf("  %s %.1f %%\n", padRight("water:", 15), b.WaterPercentage)
		}
		if b.VisceralFat > 0 {
			fmt.Printf("  %s %.1f\n", padRight("visceral fat:", 15), b.VisceralFat)
		}
		if b.BMR > 0 {
			fmt.Printf("  %s %d kcal/day\n", padRight("bmr:", 15), b.BMR)
		}
		if b.MetabolicAge > 0 {
			fmt.Printf("  %s %d years\n", padRight("metabolic age:", 15), b.MetabolicAge)
		}
		if b.Notes != nil {
			fmt.Printf("  %s %s\n", padRight("notes:", 15), *b.Notes)
		}
		return nil
	},
}

var bioDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a measurement",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadStore(cmd); err != nil {
			return err
		}

		id := args[0]
		for _, b := range appStore.BioimpedanceHistory() {
			if strings.HasPrefix(b.ID, id) {
				id = b.ID
				break
			}
		}

		if err := appStore.DeleteBioimpedance(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}
		color.Green("✓ Deleted measurement %s", shortID(id))
		return nil
	},
}

func init() {
	bioAddCmd.Flags().StringVar(&bioDate, "date", "", "measurement date (YYYY-MM-DD), defaults to today")
	bioAddCmd.Flags().Float64Var(&bioFat, "fat", 0, "body fat percentage")
	bioAddCmd.Flags().Float64Var(&bioMuscle, "muscle", 0, "muscle mass in kg")
	bioAddCmd.Flags().Float64Var(&bioBone, "bone", 0, "bone mass in kg")
	bioAddCmd.Flags().Float64Var(&bioWater, "water", 0, "water percentage")
	bioAddCmd.Flags().Float64Var(&bioVisc, "visceral", 0, "visceral fat index")
	bioAddCmd.Flags().IntVar(&bioBMR, "bmr", 0, "basal metabolic rate in kcal/day")
	bioAddCmd.Flags().IntVar(&bioMetAge, "metabolic-age", 0, "metabolic age in years")
	bioAddCmd.Flags().StringVar(&bioNotes, "notes", "", "measurement notes")
	bioListCmd.Flags().IntVarP(&bioLimit, "limit", "n", 20, "max number of results")

	bioCmd.AddCommand(bioListCmd, bioAddCmd, bioLatestCmd, bioDeleteCmd)
	rootCmd.AddCommand(bioCmd)
}
