package analyzer

import (
	"context"
	"errors"

	"github.com/lerenn/model-analyzer/pkg/analyzer/consts"
	"github.com/lerenn/model-analyzer/pkg/hooks"
	"github.com/lerenn/model-analyzer/pkg/model"
	"github.com/lerenn/model-analyzer/pkg/references"
)

// Run analyzes every document under the configured root, one element at a time.
func (a *realAnalyzer) Run(ctx context.Context) (*RunContext, error) {
	rc := NewRunContext()
	params := map[string]interface{}{
		"root":      a.cfg.RootDir,
		"threshold": a.cfg.Threshold,
	}

	err := a.executeWithHooks(consts.Run, params, func(hctx *hooks.HookContext) error {
		defer func() {
			for k, v := range rc.results() {
				hctx.Results[k] = v
			}
		}()
		return a.run(ctx, rc)
	})
	return rc, err
}

func (a *realAnalyzer) run(ctx context.Context, rc *RunContext) error {
	files, err := a.deps.Model.Enumerate(a.cfg.RootDir)
	if err != nil {
		return err
	}
	rc.Stats.Files = len(files)
	a.deps.Logger.Logf("Found %d documents under %s", len(files), a.cfg.RootDir)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			a.deps.Logger.Warnf("Analysis interrupted after %d searches", rc.Stats.Searched)
			return err
		}
		if err := a.analyzeDocument(ctx, path, rc); err != nil {
			return err
		}
	}

	return nil
}

// analyzeDocument processes one document. Only cancellation is returned as an error,
// every other failure is recorded in rc.
func (a *realAnalyzer) analyzeDocument(ctx context.Context, path string, rc *RunContext) error {
	name, err := a.deps.Model.ExtractName(path)
	switch {
	case errors.Is(err, model.ErrNameAbsent):
		rc.Stats.Absent++
		return nil
	case err != nil:
		a.deps.Logger.Warnf("Skipping %s: %v", path, err)
		rc.Stats.ParseErrors++
		return nil
	}

	if suffix, skip := a.filter.MatchedSuffix(name); skip {
		a.deps.Logger.Logf("Skipping %s (suffix %s)", name, suffix)
		rc.Stats.Skipped++
		return nil
	}

	a.deps.Logger.Logf("Searching references of %s", name)
	lines, err := a.deps.Searcher.Search(ctx, name, a.cfg.RootDir)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.deps.Logger.Warnf("Search of %s failed: %v", name, err)
		rc.Review.AddError(name, err)
		rc.Stats.Failed++
		return nil
	}

	a.record(rc, name, lines)
	rc.Stats.Searched++
	return nil
}

// record stores the report of name and applies the review threshold.
func (a *realAnalyzer) record(rc *RunContext, name string, lines []string) {
	if lines == nil {
		lines = []string{}
	}

	count := references.Count(lines)
	rc.References[name] = lines
	rc.Counts[name] = count
	a.deps.Logger.Logf("%s: %d file references", name, count)

	if references.NeedsReview(count, a.cfg.Threshold) {
		rc.Review.AddLowReferences(name, count)
		rc.Stats.Flagged++
	}
}
