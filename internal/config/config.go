// Package config loads the core's configuration: defaults per build
// mode, overlaid by an optional TOML file, overlaid by environment
// variables. The only process-level surface is selecting the API base
// URL and the data directory per build mode.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/homebase-labs/homebase-core/internal/core/domain"
)

// Build modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Base URLs per build mode.
const (
	devBaseURL  = "http://localhost:4000/api"
	prodBaseURL = "https://api.homebase.app/v1"
)

// Config is the resolved configuration.
type Config struct {
	// Mode is the build mode: development or production.
	Mode string `env:"HOMEBASE_MODE" toml:"mode"`
	// APIBaseURL is the backend root URL.
	APIBaseURL string `env:"HOMEBASE_API_URL" toml:"api_base_url"`
	// DataDir holds the sqlite store. Empty means ~/.homebase/data.
	DataDir string `env:"HOMEBASE_DATA_DIR" toml:"data_dir"`
	// ValidationPolicy is optimistic or strict (see session manager).
	ValidationPolicy string `env:"HOMEBASE_VALIDATION_POLICY" toml:"validation_policy"`
	// HTTPTimeout bounds each API request. In the TOML file it is a
	// duration string such as "30s".
	HTTPTimeout time.Duration `env:"HOMEBASE_HTTP_TIMEOUT" toml:"-"`
	// RequestsPerSecond throttles outgoing API calls.
	RequestsPerSecond float64 `env:"HOMEBASE_REQUESTS_PER_SECOND" toml:"requests_per_second"`
	// Verbose enables the diagnostic logger.
	Verbose bool `env:"HOMEBASE_VERBOSE" toml:"verbose"`
}

// Default returns the configuration for a build mode.
func Default(mode string) Config {
	cfg := Config{
		Mode:              ModeProduction,
		APIBaseURL:        prodBaseURL,
		ValidationPolicy:  string(domain.PolicyOptimistic),
		HTTPTimeout:       30 * time.Second,
		RequestsPerSecond: 10,
	}
	if mode == ModeDevelopment {
		cfg.Mode = ModeDevelopment
		cfg.APIBaseURL = devBaseURL
		cfg.Verbose = true
	}
	return cfg
}

// DefaultPath returns the default config file location,
// ~/.homebase/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".homebase", "config.toml"), nil
}

// Load resolves configuration: mode defaults, then the TOML file at
// path (a missing file is not an error), then the environment. The
// mode that seeds the defaults is itself resolved first, environment
// over file, so a file setting mode = "development" also brings the
// development base URL and verbosity with it.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	mode := os.Getenv("HOMEBASE_MODE")
	if mode == "" && len(data) > 0 {
		var peek struct {
			Mode string `toml:"mode"`
		}
		if err := toml.Unmarshal(data, &peek); err == nil {
			mode = peek.Mode
		}
	}

	cfg := Default(mode)
	if err := overlayFile(path, data, &cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readFile returns the config file contents, or nil when path is empty
// or the file does not exist.
func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return data, nil
}

// overlayFile overlays the TOML contents onto cfg. The timeout is
// carried as a duration string; TOML has no native duration type.
func overlayFile(path string, data []byte, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	var durations struct {
		HTTPTimeout string `toml:"http_timeout"`
	}
	if err := toml.Unmarshal(data, &durations); err == nil && durations.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(durations.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("parsing http_timeout %q: %w", durations.HTTPTimeout, err)
		}
		cfg.HTTPTimeout = timeout
	}
	return nil
}

// Policy returns the validation policy as its domain type, defaulting
// to optimistic for unknown values.
func (c *Config) Policy() domain.ValidationPolicy {
	if c.ValidationPolicy == string(domain.PolicyStrict) {
		return domain.PolicyStrict
	}
	return domain.PolicyOptimistic
}

func (c *Config) validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, c.Mode)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: api base URL is required", domain.ErrInvalidInput)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidInput)
	}
	return nil
}
