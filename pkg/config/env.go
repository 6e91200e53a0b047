package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables overriding the configuration file.
const (
	EnvRootDir       = "MA_ROOT_DIR"
	EnvExtension     = "MA_EXTENSION"
	EnvSearchBackend = "MA_SEARCH_BACKEND"
	EnvSearchTool    = "MA_SEARCH_TOOL"
	EnvSearchArgs    = "MA_SEARCH_ARGS"
	EnvSearchTimeout = "MA_SEARCH_TIMEOUT"
	EnvResultsFile   = "MA_RESULTS_FILE"
	EnvOutputFile    = "MA_OUTPUT_FILE"
	EnvSkipSuffixes  = "MA_SKIP_SUFFIXES"
	EnvThreshold     = "MA_THRESHOLD"
)

// environment resolves variables from the process first, then from the .env files.
type environment struct {
	lookup func(string) (string, bool)
	files  map[string]string
}

func (c *realManager) loadEnvironment() (environment, error) {
	env := environment{lookup: c.lookupEnv, files: map[string]string{}}
	for _, file := range c.envFiles {
		exists, err := c.fs.Exists(file)
		if err != nil {
			return env, err
		}
		if !exists {
			continue
		}
		values, err := godotenv.Read(file)
		if err != nil {
			return env, fmt.Errorf("%w: %s: %w", ErrInvalidEnv, file, err)
		}
		for k, v := range values {
			if _, seen := env.files[k]; !seen {
				env.files[k] = v
			}
		}
	}
	return env, nil
}

func (e environment) get(key string) (string, bool) {
	if e.lookup != nil {
		if v, ok := e.lookup(key); ok {
			return v, true
		}
	}
	v, ok := e.files[key]
	return v, ok
}

// apply overrides cfg with every variable that is set.
func (e environment) apply(cfg *Config) error {
	for key, dst := range map[string]*string{
		EnvRootDir:       &cfg.RootDir,
		EnvExtension:     &cfg.Extension,
		EnvSearchBackend: &cfg.Search.Backend,
		EnvSearchTool:    &cfg.Search.ToolPath,
		EnvSearchArgs:    &cfg.Search.Args,
		EnvResultsFile:   &cfg.Search.ResultsFile,
		EnvOutputFile:    &cfg.OutputFile,
	} {
		if v, ok := e.get(key); ok {
			*dst = v
		}
	}

	if v, ok := e.get(EnvThreshold); ok {
		threshold, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidEnv, EnvThreshold, err)
		}
		cfg.Threshold = threshold
	}

	if v, ok := e.get(EnvSearchTimeout); ok {
		timeout, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidEnv, EnvSearchTimeout, err)
		}
		cfg.Search.Timeout = timeout
	}

	if v, ok := e.get(EnvSkipSuffixes); ok {
		cfg.SkipSuffixes = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.SkipSuffixes = append(cfg.SkipSuffixes, s)
			}
		}
	}

	return nil
}
