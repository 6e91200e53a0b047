// Package config provides configuration management functionality for ma.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lerenn/model-analyzer/configs"
	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/search"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	RootDir      string   `yaml:"root_dir"`
	Extension    string   `yaml:"extension"`
	Search       Search   `yaml:"search"`
	OutputFile   string   `yaml:"output_file"`
	SkipSuffixes []string `yaml:"skip_suffixes"`
	Threshold    int      `yaml:"threshold"`
}

// Search configures the search backend.
type Search struct {
	Backend     string        `yaml:"backend"`
	ToolPath    string        `yaml:"tool_path"`
	Args        string        `yaml:"args"`
	ResultsFile string        `yaml:"results_file"`
	Timeout     time.Duration `yaml:"timeout"`
	IgnoreCase  bool          `yaml:"ignore_case"`
}

// DefaultResultsFile returns the results file used when none is configured.
func DefaultResultsFile() string {
	return filepath.Join(os.TempDir(), "ma", "results.txt")
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("invalid embedded default configuration: %v", err))
	}
	if cfg.Search.ResultsFile == "" {
		cfg.Search.ResultsFile = DefaultResultsFile()
	}
	return cfg
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	switch {
	case c.RootDir == "":
		return ErrRootDirEmpty
	case c.Extension == "":
		return ErrExtensionEmpty
	case c.OutputFile == "":
		return ErrOutputFileEmpty
	case c.Threshold < 1:
		return fmt.Errorf("%w: got %d", ErrThresholdTooLow, c.Threshold)
	case c.Search.Timeout < 0:
		return ErrTimeoutNegative
	}

	switch c.Search.Backend {
	case search.BackendBuiltin:
	case search.BackendExternal:
		if c.Search.ToolPath == "" {
			return ErrToolPathEmpty
		}
		if c.Search.ResultsFile == "" {
			return ErrResultsFileEmpty
		}
		if c.Search.Args == "" {
			return ErrArgsEmpty
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Search.Backend)
	}

	return nil
}

// expandTildes expands ~ in every path of the configuration.
func (c *Config) expandTildes(fsys fs.FS) error {
	for _, p := range []*string{&c.RootDir, &c.OutputFile, &c.Search.ToolPath, &c.Search.ResultsFile} {
		expanded, err := fsys.ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
