// Command homebase is the developer harness for the Homebase core. It
// wires the configuration, storage, session, connectivity, and API
// layers the same way the mobile shell does, then hands control to the
// CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/homebase-labs/homebase-core/internal/adapters/driven/alert"
	"github.com/homebase-labs/homebase-core/internal/adapters/driven/api"
	"github.com/homebase-labs/homebase-core/internal/adapters/driven/connectivity"
	"github.com/homebase-labs/homebase-core/internal/adapters/driven/storage/sqlite"
	"github.com/homebase-labs/homebase-core/internal/adapters/driving/cli"
	"github.com/homebase-labs/homebase-core/internal/config"
	"github.com/homebase-labs/homebase-core/internal/core/services"
	"github.com/homebase-labs/homebase-core/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.SetVerbose(cfg.Verbose)

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	errlog := services.NewErrorLog(
		services.WithDevMode(cfg.Mode == config.ModeDevelopment),
		services.WithAlerter(alert.NewWriterAlerter(os.Stderr)),
	)

	// The session supplies the client's bearer tokens and the client
	// validates the session's tokens, so the session is built first and
	// the client bound to it afterwards.
	session := services.NewSessionManager(store, nil,
		services.WithValidationPolicy(cfg.Policy()),
		services.WithSessionErrorLog(errlog),
	)
	client := api.New(api.Config{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Tokens:            api.NewSessionTokenSource(session),
	})
	session.BindAuthAPI(client)

	probe := connectivity.NewProbe("")
	monitor := services.NewConnectivityMonitor(probe)
	watcher := connectivity.NewWatcher(probe, monitor, connectivity.DefaultInterval)
	watcher.Start(context.Background())
	defer watcher.Stop()

	stopWatch, err := config.Watch(configPath, func(next *config.Config) {
		logger.SetVerbose(next.Verbose)
	})
	if err != nil {
		logger.Warn("config: watch unavailable: %v", err)
	} else {
		defer stopWatch() //nolint:errcheck
	}

	cli.SetServices(cfg, client, session, monitor, errlog)
	return cli.Execute()
}
