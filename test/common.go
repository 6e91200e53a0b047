//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	ModelRoot  string
	OutputFile string
	MaPath     string
}

// defaultModel is a small model tree: Foo is referenced by Bar, Bar and Lonely by nobody, Thing_Extension is skipped
var defaultModel = map[string]string{
	"AxClass/Foo.xml":             "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<AxClass>\n\t<Name>Foo</Name>\n</AxClass>\n",
	"AxClass/Bar.xml":             "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<AxClass>\n\t<Name>Bar</Name>\n\t<Source>Foo foo;</Source>\n</AxClass>\n",
	"AxClass/Lonely.xml":          "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<AxClass>\n\t<Name>Lonely</Name>\n</AxClass>\n",
	"AxClass/Thing_Extension.xml": "<AxClassExtension>\n\t<Name>Thing_Extension</Name>\n</AxClassExtension>\n",
}

// setupTestEnvironment creates a temporary model tree and a configuration pointing to it
func setupTestEnvironment(t *testing.T, mutate func(cfg *config.Config)) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:    tempDir,
		ConfigPath: filepath.Join(tempDir, ".ma", "config.yaml"),
		ModelRoot:  filepath.Join(tempDir, "model"),
		OutputFile: filepath.Join(tempDir, "model-analysis.json"),
		MaPath:     filepath.Join(tempDir, "ma"),
	}
	writeFiles(t, setup.ModelRoot, defaultModel)

	cfg := config.Default()
	cfg.RootDir = setup.ModelRoot
	cfg.OutputFile = setup.OutputFile
	cfg.Search.ResultsFile = filepath.Join(tempDir, "results", "RansackResults.txt")
	if mutate != nil {
		mutate(&cfg)
	}

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(setup.ConfigPath), 0755))
	require.NoError(t, os.WriteFile(setup.ConfigPath, data, 0644))

	buildBinary(t, setup)
	return setup
}

// writeFiles writes files relative to root
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// buildBinary builds the ma binary into the test directory
func buildBinary(t *testing.T, setup *TestSetup) {
	t.Helper()

	currentDir, err := os.Getwd()
	require.NoError(t, err)
	projectRoot := filepath.Dir(currentDir)

	buildCmd := exec.Command("go", "build", "-o", setup.MaPath, "./cmd/ma")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Logf("Build failed with output: %s", string(buildOutput))
		require.NoError(t, err, "Failed to build ma binary")
	}
}

// maCommand prepares an ma invocation using the test configuration
func maCommand(setup *TestSetup, args ...string) *exec.Cmd {
	cmdArgs := append(args, "--config", setup.ConfigPath)
	cmd := exec.Command(setup.MaPath, cmdArgs...)
	cmd.Dir = setup.TempDir
	cmd.Env = cleanEnv()
	return cmd
}

// runMA runs ma and returns its combined output
func runMA(t *testing.T, setup *TestSetup, args ...string) (string, error) {
	t.Helper()
	output, err := maCommand(setup, args...).CombinedOutput()
	return string(output), err
}

// cleanEnv drops MA_* overrides of the calling environment
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if len(kv) < 3 || kv[:3] != "MA_" {
			env = append(env, kv)
		}
	}
	return env
}
