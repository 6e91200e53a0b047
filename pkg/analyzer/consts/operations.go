// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	Run       = "Run"
	Reanalyze = "Reanalyze"
	Save      = "Save"
)
