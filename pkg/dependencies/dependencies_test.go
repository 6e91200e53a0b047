//go:build unit

package dependencies

import (
	"testing"

	fsMocks "github.com/lerenn/model-analyzer/pkg/fs/mocks"
	hooksMocks "github.com/lerenn/model-analyzer/pkg/hooks/mocks"
	loggerMocks "github.com/lerenn/model-analyzer/pkg/logger/mocks"
	modelMocks "github.com/lerenn/model-analyzer/pkg/model/mocks"
	reportMocks "github.com/lerenn/model-analyzer/pkg/report/mocks"
	searchMocks "github.com/lerenn/model-analyzer/pkg/search/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func complete(t *testing.T) *Dependencies {
	ctrl := gomock.NewController(t)
	return New().
		WithFS(fsMocks.NewMockFS(ctrl)).
		WithModel(modelMocks.NewMockModel(ctrl)).
		WithSearcher(searchMocks.NewMockSearcher(ctrl)).
		WithReport(reportMocks.NewMockManager(ctrl)).
		WithLogger(loggerMocks.NewMockLogger(ctrl)).
		WithHooks(hooksMocks.NewMockHookManagerInterface(ctrl))
}

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Model)
	assert.NotNil(t, deps.Report)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Hooks)

	assert.Nil(t, deps.Searcher)

	assert.ErrorIs(t, deps.Validate(), ErrSearcherMissing)
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name    string
		clear   func(d *Dependencies)
		wantErr error
	}{
		{name: "complete", clear: func(*Dependencies) {}},
		{name: "missing fs", clear: func(d *Dependencies) { d.FS = nil }, wantErr: ErrFSMissing},
		{name: "missing model", clear: func(d *Dependencies) { d.Model = nil }, wantErr: ErrModelMissing},
		{name: "missing searcher", clear: func(d *Dependencies) { d.Searcher = nil }, wantErr: ErrSearcherMissing},
		{name: "missing report", clear: func(d *Dependencies) { d.Report = nil }, wantErr: ErrReportMissing},
		{name: "missing logger", clear: func(d *Dependencies) { d.Logger = nil }, wantErr: ErrLoggerMissing},
		{name: "missing hooks", clear: func(d *Dependencies) { d.Hooks = nil }, wantErr: ErrHooksMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := complete(t)
			tt.clear(deps)

			err := deps.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	// The first missing dependency is reported
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}
