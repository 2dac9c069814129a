// Package cli is the developer harness for the Homebase core: it
// drives the session, API client, and diagnostics against a live
// backend from a terminal. It is not the mobile presentation layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/homebase-labs/homebase-core/internal/adapters/driven/api"
	"github.com/homebase-labs/homebase-core/internal/config"
	"github.com/homebase-labs/homebase-core/internal/core/ports/driving"
	"github.com/homebase-labs/homebase-core/internal/logger"
)

// Services injected by the application root before Execute.
var (
	cfg                 *config.Config
	apiClient           *api.Client
	sessionService      driving.SessionService
	connectivityService driving.ConnectivityService
	errorReporter       driving.ErrorReporter
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "homebase",
	Short: "Homebase property-management core",
	Long: `Developer harness for the Homebase session and navigation core.

Drives credential persistence, token validation, the REST client, and
the diagnostics buffer against a live backend.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false, "Enable verbose diagnostic output")
}

// SetServices injects the constructed services. Called once by the
// application root before Execute.
func SetServices(
	c *config.Config,
	client *api.Client,
	session driving.SessionService,
	connectivity driving.ConnectivityService,
	reporter driving.ErrorReporter,
) {
	cfg = c
	apiClient = client
	sessionService = session
	connectivityService = connectivity
	errorReporter = reporter
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
