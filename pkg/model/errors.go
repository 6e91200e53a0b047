// Package model discovers model-definition documents and reads their declared names.
package model

import "errors"

// Error definitions for model package.
var (
	// ErrNotFound is returned when the model root directory does not exist.
	ErrNotFound = errors.New("model root directory not found")
	// ErrParse is returned when a document is not well-formed XML.
	ErrParse = errors.New("failed to parse document")
	// ErrNameAbsent is returned when a document declares no Name. It is not a failure.
	ErrNameAbsent = errors.New("document has no Name")
)
