// Package cli provides common configuration and utility functions for the ma CLI.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path used by the commands.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".ma", "config.yaml")
}

// NewConfigManager creates a new Manager with the appropriate config path.
// The .env file of the working directory is consulted for MA_* overrides.
func NewConfigManager() config.Manager {
	return config.NewManager(config.NewManagerParams{
		ConfigPath: GetConfigPath(),
		EnvFiles:   []string{config.DefaultEnvFile},
	})
}

// LoadConfig loads the configuration, falling back to the defaults when no file exists.
func LoadConfig() (config.Config, error) {
	cfg, err := NewConfigManager().GetConfigWithFallback()
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// NewLogger returns the logger matching the --quiet and --verbose flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

// Output returns where a command prints its results.
func Output(cmd *cobra.Command) io.Writer {
	if Quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}
