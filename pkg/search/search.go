package search

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/model-analyzer/pkg/fs"
)

//go:generate mockgen -source=search.go -destination=mocks/search.gen.go -package=mocks

// Backend names.
const (
	// BackendBuiltin searches the tree in-process.
	BackendBuiltin = "builtin"
	// BackendExternal shells out to a desktop search utility.
	BackendExternal = "external"
)

// DefaultArgs is the argument template of the external tool (Agent Ransack syntax):
// search contents (-c) of the directory (-d) and its subfolders (-s), output to a file (-o).
const DefaultArgs = `-c "$SEARCH_TERM" -d "$SEARCH_ROOT" -s -o "$RESULTS_FILE"`

// Searcher interface provides full-text search over a directory tree.
type Searcher interface {
	// Search looks for term as a literal substring in every file under root.
	// The report is returned line by line, each line keeping its "\n" terminator.
	Search(ctx context.Context, term, root string) ([]string, error)
}

// NewSearcherParams contains parameters for creating a new Searcher instance.
type NewSearcherParams struct {
	FS          fs.FS
	ToolPath    string
	Args        string
	ResultsFile string
	Timeout     time.Duration
	// IgnoreCase makes the builtin backend match terms case-insensitively.
	IgnoreCase bool
	// Exclude lists files the builtin backend never reports, such as its own output.
	Exclude []string
}

// New creates the Searcher for the given backend.
func New(backend string, params NewSearcherParams) (Searcher, error) {
	switch backend {
	case BackendBuiltin, "":
		return NewBuiltinSearcher(params), nil
	case BackendExternal:
		return NewExternalSearcher(params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
