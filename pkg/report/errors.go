// Package report persists reference records and renders review lists.
package report

import "errors"

// Error definitions for report package.
var (
	// ErrUnsupportedFormat is returned for an output path with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported report format")
	// ErrDecode is returned when a persisted record cannot be decoded.
	ErrDecode = errors.New("failed to decode reference record")
	// ErrPathEmpty is returned when no output path is given.
	ErrPathEmpty = errors.New("report path cannot be empty")
)
