package analyzer

import (
	"fmt"

	"github.com/lerenn/model-analyzer/pkg/analyzer/consts"
	"github.com/lerenn/model-analyzer/pkg/hooks"
	"github.com/lerenn/model-analyzer/pkg/report"
)

// Reanalyze recounts every identifier of record, in sorted order.
func (a *realAnalyzer) Reanalyze(record report.Record) *RunContext {
	rc := NewRunContext()
	for _, name := range record.Names() {
		a.record(rc, name, record[name])
		rc.Stats.Searched++
	}
	return rc
}

// Load reads the record at path and reanalyzes it.
func (a *realAnalyzer) Load(path string) (*RunContext, error) {
	var rc *RunContext
	err := a.executeWithHooks(consts.Reanalyze, map[string]interface{}{"path": path}, func(hctx *hooks.HookContext) error {
		exists, err := a.deps.FS.Exists(path)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrDumpNotFound, path)
		}

		record, err := a.deps.Report.Load(path)
		if err != nil {
			return err
		}
		rc = a.Reanalyze(record)
		for k, v := range rc.results() {
			hctx.Results[k] = v
		}
		return nil
	})
	return rc, err
}

// Save writes the references of rc to path.
func (a *realAnalyzer) Save(path string, rc *RunContext) error {
	return a.executeWithHooks(consts.Save, map[string]interface{}{"path": path}, func(hctx *hooks.HookContext) error {
		if err := a.deps.Report.Save(path, rc.References); err != nil {
			return err
		}
		hctx.Results["identifiers"] = len(rc.References)
		return nil
	})
}
