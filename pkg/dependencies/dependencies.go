// Package dependencies provides a centralized dependency container for ma.
package dependencies

import (
	"errors"

	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/hooks"
	"github.com/lerenn/model-analyzer/pkg/logger"
	"github.com/lerenn/model-analyzer/pkg/model"
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/lerenn/model-analyzer/pkg/search"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrModelMissing    = errors.New("model dependency is required but not set")
	ErrSearcherMissing = errors.New("searcher dependency is required but not set")
	ErrReportMissing   = errors.New("report dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrHooksMissing    = errors.New("hook manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Model    model.Model
	Searcher search.Searcher
	Report   report.Manager
	Logger   logger.Logger
	Hooks    hooks.HookManagerInterface
}

// New creates a new Dependencies instance with defaults.
// The Searcher depends on the loaded configuration and is left nil.
func New() *Dependencies {
	fsInstance := fs.NewFS()
	return &Dependencies{
		FS:     fsInstance,
		Model:  model.NewModel(model.NewModelParams{FS: fsInstance}),
		Report: report.NewManager(fsInstance),
		Logger: logger.NewNoopLogger(),
		Hooks:  hooks.NewHookManager(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithModel sets the model reader and returns the instance for chaining.
func (d *Dependencies) WithModel(m model.Model) *Dependencies {
	d.Model = m
	return d
}

// WithSearcher sets the searcher and returns the instance for chaining.
func (d *Dependencies) WithSearcher(s search.Searcher) *Dependencies {
	d.Searcher = s
	return d
}

// WithReport sets the report manager and returns the instance for chaining.
func (d *Dependencies) WithReport(r report.Manager) *Dependencies {
	d.Report = r
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHooks sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHooks(hm hooks.HookManagerInterface) *Dependencies {
	d.Hooks = hm
	return d
}

type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns the first missing one.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Model, ErrModelMissing},
		{d.Searcher, ErrSearcherMissing},
		{d.Report, ErrReportMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Hooks, ErrHooksMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
