package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	Long: `Sign in against the backend and persist the credential record.

The password is read from the terminal without echo. With --email the
prompt for the address is skipped.

Examples:
  homebase login
  homebase login --email owner@example.com`,
	RunE: runLogin,
}

var logoutAll bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the persisted session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session state and connectivity",
	RunE:  runStatus,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Login email address")
	logoutCmd.Flags().BoolVar(&logoutAll, "all", true, "Also remove cached data and preferences")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

//nolint:errcheck // CLI interactive flow
func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil || apiClient == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	email := loginEmail
	if email == "" {
		cmd.Print("Email: ")
		input, _ := reader.ReadString('\n')
		email = strings.TrimSpace(input)
	}
	if email == "" {
		return errors.New("email is required")
	}

	var password string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		cmd.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	} else {
		input, _ := reader.ReadString('\n')
		password = strings.TrimSpace(input)
	}
	if password == "" {
		return errors.New("password is required")
	}

	creds, err := apiClient.Login(ctx, email, password)
	if err != nil {
		if errorReporter != nil {
			errorReporter.LogError(err, "cli.login")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := sessionService.SetCredentials(ctx, *creds); err != nil {
		return fmt.Errorf("storing credentials: %w", err)
	}

	cmd.Printf("Signed in as %s %s (%s)\n", creds.User.FirstName, creds.User.LastName, creds.User.Email)
	return nil
}

//nolint:errcheck // CLI interactive flow
func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	// Logout is destructive; confirm before executing.
	cmd.Print("Sign out and remove the persisted session? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	if answer := strings.ToLower(strings.TrimSpace(input)); answer != "y" && answer != "yes" {
		cmd.Println("Aborted.")
		return nil
	}

	ctx := context.Background()
	result := sessionService.Logout(ctx, sessionService.AccessToken(), logoutAll)
	if !result.Success {
		cmd.Printf("Signed out with storage errors: %s\n", result.Err)
		return nil
	}
	cmd.Println("Signed out.")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()
	sessionService.LoadSession(ctx)

	cmd.Printf("Session: %s\n", sessionService.State())
	if creds := sessionService.Credentials(); creds != nil {
		cmd.Printf("  User: %s %s (%s)\n", creds.User.FirstName, creds.User.LastName, creds.User.Email)
		cmd.Printf("  Property: %s\n", creds.User.PropertyID)
		cmd.Printf("  Refresh token: %v\n", creds.HasRefreshToken())
	}

	if connectivityService != nil {
		cmd.Printf("Online: %v\n", connectivityService.CheckConnectivity(ctx))
	}
	if cfg != nil {
		cmd.Printf("Backend: %s (%s)\n", cfg.APIBaseURL, cfg.Mode)
	}
	return nil
}
