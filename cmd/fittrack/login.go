// ABOUTME: CLI commands for account auth: login, register, logout, whoami, passwd.
// ABOUTME: Session state is persisted by the session manager, not here.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/session"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your fittrack account",
	Long: `Sign in with your email and password.

The session token is stored locally, so you stay signed in across
invocations until you run 'fittrack logout' or the session expires.

Examples:
  fittrack login --email sam@example.com
  fittrack login   # prompts for email and password`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials()
		if err != nil {
			return err
		}

		if err := sessionMgr.SignIn(cmd.Context(), email, password); err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				return fmt.Errorf("invalid email or password")
			}
			return fmt.Errorf("sign in failed: %w", err)
		}

		user := sessionMgr.User()
		color.Green("✓ Signed in as %s", user.Email)
		if user.ProfileID == nil {
			fmt.Println("No training profile yet. Create one with: fittrack profile create <name>")
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a fittrack account",
	Long: `Create a new account and sign in.

Examples:
  fittrack register --email sam@example.com --name "Sam"
  fittrack register   # prompts for everything`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials()
		if err != nil {
			return err
		}
		name := authName
		if name == "" {
			name, err = prompt("Name: ")
			if err != nil {
				return err
			}
		}

		if err := sessionMgr.SignUp(cmd.Context(), email, password, name); err != nil {
			if errors.Is(err, session.ErrEmailTaken) {
				return fmt.Errorf("that email is already registered; try 'fittrack login'")
			}
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("✓ Account created for %s", email)
		fmt.Println("Next: create your training profile with 'fittrack profile create <name>'")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionMgr.SignOut()
		appStore.Reset()
		color.Green("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		user := sessionMgr.User()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.ProfileID != nil {
			fmt.Printf("profile: %s\n", color.New(color.Faint).Sprint(*user.ProfileID))
		} else {
			fmt.Println("profile: none")
		}
		if exp, ok := sessionMgr.ExpiresAt(); ok {
			fmt.Printf("session expires: %s\n", exp.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		current, err := prompt("Current password: ")
		if err != nil {
			return err
		}
		updated, err := prompt("New password: ")
		if err != nil {
			return err
		}

		if err := sessionMgr.ChangePassword(cmd.Context(), current, updated); err != nil {
			return fmt.Errorf("password change failed: %w", err)
		}
		color.Green("✓ Password changed")
		return nil
	},
}

func credentials() (email, password string, err error) {
	email = authEmail
	if email == "" {
		email, err = prompt("Email: ")
		if err != nil {
			return "", "", err
		}
	}
	password = authPassword
	if password == "" {
		password, err = prompt("Password: ")
		if err != nil {
			return "", "", err
		}
	}
	return email, password, nil
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	registerCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, passwdCmd)
}
