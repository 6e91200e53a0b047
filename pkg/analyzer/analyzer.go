// Package analyzer finds model elements that are referenced by too few files.
package analyzer

import (
	"context"
	"fmt"

	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/dependencies"
	"github.com/lerenn/model-analyzer/pkg/filter"
	"github.com/lerenn/model-analyzer/pkg/hooks"
	"github.com/lerenn/model-analyzer/pkg/logger"
	"github.com/lerenn/model-analyzer/pkg/report"
)

// Analyzer interface provides the reference analysis of a model tree.
type Analyzer interface {
	// Run analyzes every document under the configured root.
	// On cancellation the partial RunContext is returned along with ctx.Err().
	Run(ctx context.Context) (*RunContext, error)
	// Reanalyze recounts references of a previously written record without searching.
	Reanalyze(record report.Record) *RunContext
	// Load reads the record at path and reanalyzes it.
	Load(path string) (*RunContext, error)
	// Save writes the references of rc to path.
	Save(path string, rc *RunContext) error
	// SetLogger sets the logger for this Analyzer instance.
	SetLogger(logger logger.Logger)
}

// NewAnalyzerParams contains parameters for creating a new Analyzer instance.
type NewAnalyzerParams struct {
	Dependencies *dependencies.Dependencies
	Config       config.Config
}

type realAnalyzer struct {
	deps   *dependencies.Dependencies
	cfg    config.Config
	filter filter.Filter
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(params NewAnalyzerParams) (Analyzer, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDependencies, err)
	}
	if err := params.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &realAnalyzer{
		deps:   deps,
		cfg:    params.Config,
		filter: filter.New(params.Config.SkipSuffixes),
	}, nil
}

// SetLogger sets the logger for this Analyzer instance.
func (a *realAnalyzer) SetLogger(logger logger.Logger) {
	a.deps.Logger = logger
}

// executeWithHooks executes an operation with pre, post and error hooks.
func (a *realAnalyzer) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(ctx *hooks.HookContext) error) error {
	ctx := hooks.NewHookContext(operationName, params)
	if err := a.deps.Hooks.ExecutePreHooks(operationName, ctx); err != nil {
		return err
	}

	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation(ctx)
	}()
	ctx.Error = resultErr

	if resultErr != nil {
		if hookErr := a.deps.Hooks.ExecuteErrorHooks(operationName, ctx); hookErr != nil {
			a.deps.Logger.Warnf("%v", hookErr)
		}
	}
	if hookErr := a.deps.Hooks.ExecutePostHooks(operationName, ctx); hookErr != nil && resultErr == nil {
		return hookErr
	}

	return resultErr
}
