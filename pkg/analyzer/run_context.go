package analyzer

import (
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/lerenn/model-analyzer/pkg/review"
)

// Stats counts what happened to the documents of a run.
type Stats struct {
	// Files is the number of documents enumerated.
	Files int
	// Searched is the number of searches that completed.
	Searched int
	// Skipped is the number of elements excluded by the skip filter.
	Skipped int
	// Absent is the number of documents without a Name.
	Absent int
	// ParseErrors is the number of documents that could not be parsed.
	ParseErrors int
	// Failed is the number of searches that failed.
	Failed int
	// Flagged is the number of elements below the reference threshold.
	Flagged int
}

// RunContext holds the state accumulated by one analysis.
type RunContext struct {
	// References maps each searched identifier to its raw report lines.
	References report.Record
	// Review lists identifiers to inspect manually, in discovery order.
	Review *review.List
	// Counts maps each searched identifier to its number of referencing files.
	Counts map[string]int
	Stats  Stats
}

// NewRunContext creates an empty RunContext.
func NewRunContext() *RunContext {
	return &RunContext{
		References: report.Record{},
		Review:     &review.List{},
		Counts:     map[string]int{},
	}
}

func (rc *RunContext) results() map[string]interface{} {
	return map[string]interface{}{
		"files":        rc.Stats.Files,
		"searched":     rc.Stats.Searched,
		"skipped":      rc.Stats.Skipped,
		"absent":       rc.Stats.Absent,
		"parse_errors": rc.Stats.ParseErrors,
		"failed":       rc.Stats.Failed,
		"flagged":      rc.Stats.Flagged,
	}
}
