package cli

import (
	"github.com/lerenn/model-analyzer/pkg/analyzer"
	"github.com/lerenn/model-analyzer/pkg/analyzer/consts"
	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/dependencies"
	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/hooks"
	"github.com/lerenn/model-analyzer/pkg/model"
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/lerenn/model-analyzer/pkg/search"
)

// NewAnalyzer creates an Analyzer wired for cfg.
func NewAnalyzer(cfg config.Config) (analyzer.Analyzer, error) {
	fsInstance := fs.NewFS()
	log := NewLogger()

	searcher, err := search.New(cfg.Search.Backend, search.NewSearcherParams{
		FS:          fsInstance,
		ToolPath:    cfg.Search.ToolPath,
		Args:        cfg.Search.Args,
		ResultsFile: cfg.Search.ResultsFile,
		Timeout:     cfg.Search.Timeout,
		IgnoreCase:  cfg.Search.IgnoreCase,
		Exclude:     []string{cfg.OutputFile, cfg.Search.ResultsFile},
	})
	if err != nil {
		return nil, err
	}

	hookManager := hooks.NewHookManager()
	if Verbose {
		err := hooks.NewLoggingHook(log).RegisterForOperations(hookManager, consts.Run, consts.Reanalyze, consts.Save)
		if err != nil {
			return nil, err
		}
	}

	return analyzer.NewAnalyzer(analyzer.NewAnalyzerParams{
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithModel(model.NewModel(model.NewModelParams{FS: fsInstance, Logger: log, Extension: cfg.Extension})).
			WithSearcher(searcher).
			WithReport(report.NewManager(fsInstance)).
			WithLogger(log).
			WithHooks(hookManager),
		Config: cfg,
	})
}
