package search

import (
	"fmt"

	"mvdan.cc/sh/v3/shell"
)

// Variables available in the argument template.
const (
	VarTerm        = "SEARCH_TERM"
	VarRoot        = "SEARCH_ROOT"
	VarResultsFile = "RESULTS_FILE"
)

// ExpandArgs splits a shell-quoted argument template into arguments, expanding
// the search variables. Expanded values are never re-split, so terms containing
// spaces or quotes stay a single argument.
func ExpandArgs(template, term, root, resultsFile string) ([]string, error) {
	vars := map[string]string{
		VarTerm:        term,
		VarRoot:        root,
		VarResultsFile: resultsFile,
	}

	args, err := shell.Fields(template, func(name string) string {
		return vars[name]
	})
	if err != nil {
		return nil, fmt.Errorf("invalid argument template %q: %w", template, err)
	}
	return args, nil
}
