package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("ma configuration not found. Run 'ma init' to initialize")
	// Environment override errors.
	ErrInvalidEnv = errors.New("invalid environment override")

	// Configuration validation errors.
	ErrRootDirEmpty     = errors.New("root_dir cannot be empty")
	ErrOutputFileEmpty  = errors.New("output_file cannot be empty")
	ErrExtensionEmpty   = errors.New("extension cannot be empty")
	ErrThresholdTooLow  = errors.New("threshold must be at least 1")
	ErrUnknownBackend   = errors.New("unknown search backend")
	ErrToolPathEmpty    = errors.New("search.tool_path cannot be empty with the external backend")
	ErrResultsFileEmpty = errors.New("search.results_file cannot be empty with the external backend")
	ErrArgsEmpty        = errors.New("search.args cannot be empty with the external backend")
	ErrTimeoutNegative  = errors.New("search.timeout cannot be negative")
)
