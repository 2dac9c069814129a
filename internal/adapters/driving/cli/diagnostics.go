package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var diagnosticsCmd = &cobra.Command{
	Use:     "diagnostics",
	Aliases: []string{"errors"},
	Short:   "Show the in-memory error log",
	RunE:    runDiagnostics,
}

var diagnosticsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the error log",
	RunE:  runDiagnosticsClear,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	diagnosticsCmd.AddCommand(diagnosticsClearCmd)
	rootCmd.AddCommand(diagnosticsCmd)
	rootCmd.AddCommand(configCmd)
}

func runDiagnostics(cmd *cobra.Command, _ []string) error {
	if errorReporter == nil {
		return errors.New("error reporter not configured")
	}

	entries := errorReporter.Entries()
	if len(entries) == 0 {
		cmd.Println("No recorded errors.")
		return nil
	}
	for _, entry := range entries {
		cmd.Printf("%s  [%s]  %s\n", entry.Timestamp.Format(time.RFC3339), entry.Context, entry.Message)
	}
	return nil
}

func runDiagnosticsClear(cmd *cobra.Command, _ []string) error {
	if errorReporter == nil {
		return errors.New("error reporter not configured")
	}
	errorReporter.Clear()
	cmd.Println("Error log cleared.")
	return nil
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if cfg == nil {
		return errors.New("configuration not loaded")
	}

	cmd.Printf("mode                 %s\n", cfg.Mode)
	cmd.Printf("api_base_url         %s\n", cfg.APIBaseURL)
	cmd.Printf("data_dir             %s\n", cfg.DataDir)
	cmd.Printf("validation_policy    %s\n", cfg.Policy())
	cmd.Printf("http_timeout         %s\n", cfg.HTTPTimeout)
	cmd.Printf("requests_per_second  %g\n", cfg.RequestsPerSecond)
	cmd.Printf("verbose              %v\n", cfg.Verbose)
	return nil
}
