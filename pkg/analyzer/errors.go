package analyzer

import "errors"

// Error definitions for analyzer package.
var (
	ErrInvalidDependencies = errors.New("invalid analyzer dependencies")
	ErrInvalidConfig       = errors.New("invalid analyzer configuration")
	ErrDumpNotFound        = errors.New("reference dump not found, run 'ma run' first")
)
