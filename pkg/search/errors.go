// Package search runs full-text searches and returns file-grouped hit reports.
package search

import "errors"

// Error definitions for search package.
var (
	// ErrInvocation is returned when the search tool cannot be launched, fails or times out.
	ErrInvocation = errors.New("search invocation failed")
	// ErrReadResults is returned when the results written by the search tool cannot be read.
	ErrReadResults = errors.New("failed to read search results")
	// ErrEmptyTerm is returned when an empty term is searched.
	ErrEmptyTerm = errors.New("search term cannot be empty")
	// ErrUnknownBackend is returned for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown search backend")
	// ErrToolPathEmpty is returned when the external backend has no executable configured.
	ErrToolPathEmpty = errors.New("search tool path cannot be empty")
	// ErrResultsFileEmpty is returned when the external backend has no results file configured.
	ErrResultsFileEmpty = errors.New("results file cannot be empty")
)
