// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrEmptyFilename is returned when an atomic write is requested without a target.
	ErrEmptyFilename = errors.New("filename cannot be empty")
)
