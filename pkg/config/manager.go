package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/model-analyzer/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file, then applies environment overrides.
	GetConfig() (Config, error)
	// GetConfigWithFallback behaves like GetConfig but starts from the defaults when no file exists.
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS         fs.FS
	ConfigPath string
	// EnvFiles are dotenv files consulted after the process environment, first one wins.
	EnvFiles []string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

type realManager struct {
	fs         fs.FS
	configPath string
	envFiles   []string
	lookupEnv  func(string) (string, bool)
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}
	lookup := params.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &realManager{
		fs:         fsInstance,
		configPath: params.ConfigPath,
		envFiles:   params.EnvFiles,
		lookupEnv:  lookup,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their default value
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return c.finalize(config)
}

// GetConfigWithFallback loads the configuration, falling back to the defaults if no file exists.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.finalize(c.DefaultConfig())
	}
	return config, err
}

func (c *realManager) finalize(config Config) (Config, error) {
	env, err := c.loadEnvironment()
	if err != nil {
		return Config{}, err
	}
	if err := env.apply(&config); err != nil {
		return Config{}, err
	}

	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}
