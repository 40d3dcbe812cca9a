// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Builds the client, session, and store in PersistentPreRunE.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/localdata"
	"github.com/harperreed/fittrack/internal/logging"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/store"
)

var (
	cfg        *config.Config
	kv         *localdata.Store
	sessionMgr *session.Manager
	apiClient  *api.Client
	appStore   *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI client for the fittrack training service.

WHAT IT TRACKS:

  Workouts       training plans with exercises, sets, reps, and weights
  Completions    which workouts you finished, when, and for how long
  Body Comp      bioimpedance scale readings (weight, body fat, muscle mass)
  Hydration      daily water intake against a goal

QUICK START:

  $ fittrack register                    # Create an account
  $ fittrack profile create "Sam"        # Create your training profile
  $ fittrack workout add "Push Day"      # Create a workout plan
  $ fittrack workout list                # See your plans
  $ fittrack workout complete <id>       # Record a finished session

AI PLANNING:

  $ fittrack plan generate --goal hypertrophy --days 3
  $ fittrack plan accept <plan-id>

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  All training data lives on the fittrack server. The session token and
  an offline snapshot are kept in ~/.local/share/fittrack.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the backend skip setup entirely.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Setup(logging.SetupParams{LogLevel: cfg.GetLogLevel()})

		kv, err = localdata.Open(filepath.Join(cfg.GetDataDir(), "kv"))
		if err != nil {
			return fmt.Errorf("failed to open local data: %w", err)
		}

		sessionMgr, err = session.NewManager(kv)
		if err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}

		apiClient = api.New(cfg.GetAPIURL(), sessionMgr,
			api.WithTimeout(cfg.GetTimeout()),
			api.WithDeviceID(sessionMgr.DeviceID()),
		)
		sessionMgr.Bind(apiClient)

		// Restore never fails hard: an expired session just downgrades
		// to anonymous and the command reports "not signed in" itself.
		if err := sessionMgr.Restore(cmd.Context()); err != nil {
			return fmt.Errorf("failed to restore session: %w", err)
		}

		appStore = store.New(apiClient, sessionMgr, store.WithLocalData(kv))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if kv != nil {
			return kv.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireAuth fails fast when there is no signed-in session.
func requireAuth() error {
	if sessionMgr.State() != session.StateAuthenticated {
		return fmt.Errorf("not signed in; run 'fittrack login' first")
	}
	return nil
}

// loadStore hydrates the store, falling back to the offline snapshot when
// the backend is unreachable.
func loadStore(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}
	pid, ok := sessionMgr.ProfileID()
	if !ok {
		return fmt.Errorf("no training profile yet; run 'fittrack profile create <name>' first")
	}

	if err := appStore.Hydrate(cmd.Context()); err != nil {
		snap, snapErr := appStore.LoadSnapshot(pid)
		if snapErr != nil {
			return fmt.Errorf("%s", appStore.Err())
		}
		appStore.ApplySnapshot(snap)
		color.Yellow("⚠ Backend unreachable; showing data saved %s", snap.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
