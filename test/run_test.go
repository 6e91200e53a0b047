//go:build e2e

package test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDump(t *testing.T, path string) map[string][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var dump map[string][]string
	require.NoError(t, json.Unmarshal(data, &dump))
	return dump
}

// TestRunBuiltin analyzes the default model with the builtin backend
func TestRunBuiltin(t *testing.T) {
	setup := setupTestEnvironment(t, nil)

	output, err := runMA(t, setup, "run")
	require.NoError(t, err, output)

	assert.Contains(t, output, "INSPECT LIST:")
	assert.Contains(t, output, "1. Bar (1 file references)")
	assert.Contains(t, output, "2. Lonely (1 file references)")
	assert.NotContains(t, output, "Foo (")
	assert.Contains(t, output, "Skipping Thing_Extension (suffix _Extension)")

	dump := loadDump(t, setup.OutputFile)
	assert.Len(t, dump, 3)
	assert.Len(t, dump["Foo"], 6)
	assert.Equal(t, "\n", dump["Lonely"][len(dump["Lonely"])-1])
}

// TestRunTwiceIgnoresPreviousDump checks that a dump inside the model tree is not counted as a reference
func TestRunTwiceIgnoresPreviousDump(t *testing.T) {
	setup := setupTestEnvironment(t, func(cfg *config.Config) {
		cfg.OutputFile = filepath.Join(cfg.RootDir, "model-analysis.json")
	})
	setup.OutputFile = filepath.Join(setup.ModelRoot, "model-analysis.json")

	_, err := runMA(t, setup, "run", "-q")
	require.NoError(t, err)
	first := loadDump(t, setup.OutputFile)

	_, err = runMA(t, setup, "run", "-q")
	require.NoError(t, err)
	assert.Equal(t, first, loadDump(t, setup.OutputFile))
}

// TestReviewAfterRun reloads the dump with a stricter threshold
func TestReviewAfterRun(t *testing.T) {
	setup := setupTestEnvironment(t, nil)

	_, err := runMA(t, setup, "run", "-q")
	require.NoError(t, err)

	output, err := runMA(t, setup, "review", "--threshold", "3")
	require.NoError(t, err, output)
	assert.Contains(t, output, "1. Bar (1 file references)\n  2. Foo (2 file references)\n  3. Lonely (1 file references)\n")
	assert.Contains(t, output, "3 elements, 3 to review")
}

// TestRunMissingRoot fails without writing a dump
func TestRunMissingRoot(t *testing.T) {
	setup := setupTestEnvironment(t, nil)

	output, err := runMA(t, setup, "run", filepath.Join(setup.TempDir, "missing"))
	assert.Error(t, err)
	assert.Contains(t, output, "not found")

	_, statErr := os.Stat(setup.OutputFile)
	assert.True(t, os.IsNotExist(statErr))
}

// TestEnvOverride uses MA_THRESHOLD from a .env file in the working directory
func TestEnvOverride(t *testing.T) {
	setup := setupTestEnvironment(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(setup.TempDir, ".env"), []byte("MA_THRESHOLD=3\n"), 0644))

	output, err := runMA(t, setup, "run")
	require.NoError(t, err, output)
	assert.Contains(t, output, "3 elements to review")
}
