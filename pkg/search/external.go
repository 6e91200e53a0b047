package search

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lerenn/model-analyzer/pkg/fs"
)

// waitDelay bounds how long a killed tool may keep its output pipes open.
const waitDelay = 5 * time.Second

type externalSearcher struct {
	fs          fs.FS
	toolPath    string
	args        string
	resultsFile string
	timeout     time.Duration
}

// NewExternalSearcher creates a Searcher that shells out to an external tool.
// The tool must write its report to the results file, which is replaced on every search.
// Searches share that file, so they must not run concurrently.
func NewExternalSearcher(params NewSearcherParams) (Searcher, error) {
	if params.ToolPath == "" {
		return nil, ErrToolPathEmpty
	}
	if params.ResultsFile == "" {
		return nil, ErrResultsFileEmpty
	}

	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}

	args := params.Args
	if args == "" {
		args = DefaultArgs
	}

	return &externalSearcher{
		fs:          fsInstance,
		toolPath:    params.ToolPath,
		args:        args,
		resultsFile: params.ResultsFile,
		timeout:     params.Timeout,
	}, nil
}

// Search runs the external tool for term and reads back its results file.
func (s *externalSearcher) Search(ctx context.Context, term, root string) ([]string, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	args, err := ExpandArgs(s.args, term, root, s.resultsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvocation, err)
	}

	if err := s.resetResultsFile(); err != nil {
		return nil, err
	}

	if err := s.run(ctx, args); err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(s.resultsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadResults, s.resultsFile, err)
	}

	return SplitLines(data), nil
}

// resetResultsFile removes the previous report so a tool that writes nothing
// cannot hand back the results of the previous search.
func (s *externalSearcher) resetResultsFile() error {
	if err := s.fs.MkdirAll(filepath.Dir(s.resultsFile), 0755); err != nil {
		return fmt.Errorf("%w: failed to create results directory: %w", ErrReadResults, err)
	}
	if err := s.fs.Remove(s.resultsFile); err != nil && !s.fs.IsNotExist(err) {
		return fmt.Errorf("%w: failed to reset %s: %w", ErrReadResults, s.resultsFile, err)
	}
	return nil
}

func (s *externalSearcher) run(ctx context.Context, args []string) error {
	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, s.toolPath, args...)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	command := s.toolPath + " " + strings.Join(args, " ")
	if ctxErr := runCtx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: timed out after %s: %w (command: %s)", ErrInvocation, s.timeout, ctxErr, command)
		}
		return fmt.Errorf("%w: %w (command: %s)", ErrInvocation, ctxErr, command)
	}

	return fmt.Errorf("%w: %w (command: %s, output: %s)",
		ErrInvocation, err, command, strings.TrimSpace(string(output)))
}
