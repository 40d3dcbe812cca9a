// ABOUTME: CLI command reporting backend and session status.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend and session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("backend: %s\n", faint.Sprint(apiClient.BaseURL()))

		if err := apiClient.Health(cmd.Context()); err != nil {
			color.Red("✗ Backend unreachable: %v", err)
		} else {
			color.Green("✓ Backend reachable")
		}

		switch sessionMgr.State() {
		case session.StateAuthenticated:
			user := sessionMgr.User()
			color.Green("✓ Signed in as %s", user.Email)
			if exp, ok := sessionMgr.ExpiresAt(); ok {
				fmt.Printf("session: expires %s\n", faint.Sprint(exp.Local().Format("2006-01-02 15:04")))
			}
			if _, ok := sessionMgr.ProfileID(); !ok {
				color.Yellow("⚠ No training profile yet")
			}
		default:
			fmt.Println("Not signed in.")
		}
		fmt.Printf("device:  %s\n", faint.Sprint(sessionMgr.DeviceID()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
