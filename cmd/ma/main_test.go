//go:build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/model-analyzer/pkg/analyzer"
	"github.com/lerenn/model-analyzer/pkg/config"
	"github.com/lerenn/model-analyzer/pkg/model"
	"github.com/lerenn/model-analyzer/pkg/prompt"
	"github.com/lerenn/model-analyzer/pkg/prompt/mocks"
	"github.com/lerenn/model-analyzer/pkg/references"
	"github.com/lerenn/model-analyzer/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func execute(t *testing.T, prompter prompt.Prompter, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(prompter)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeModel(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"AxClass/Foo.xml":             "<AxClass>\n\t<Name>Foo</Name>\n</AxClass>\n",
		"AxClass/Bar.xml":             "<AxClass>\n\t<Name>Bar</Name>\n\t<Source>Foo foo;</Source>\n</AxClass>\n",
		"AxClass/Lonely.xml":          "<AxClass>\n\t<Name>Lonely</Name>\n</AxClass>\n",
		"AxClass/Thing_Extension.xml": "<AxClassExtension>\n\t<Name>Thing_Extension</Name>\n</AxClassExtension>\n",
		"AxClass/Nameless.xml":        "<AxClass>\n\t<Source/>\n</AxClass>\n",
		"Descriptor/NotAnElement.txt": "Lonely",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRunCommand(t *testing.T) {
	root := writeModel(t)
	work := t.TempDir()
	configPath := filepath.Join(work, "missing", "config.yaml")
	output := filepath.Join(work, "model-analysis.json")

	out, err := execute(t, nil, "run", root, "-c", configPath, "--output", output)
	require.NoError(t, err)

	assert.Contains(t, out, "INSPECT LIST:\n------------\n  1. Bar (1 file references)\n")
	assert.NotContains(t, out, "Lonely (")
	assert.NotContains(t, out, "Foo (")
	assert.Contains(t, out, "5 documents, 3 searched, 1 skipped, 1 without name, 0 unparsable, 0 failed")
	assert.Contains(t, out, "1 elements to review, references written to "+output)

	record, err := report.NewManager(nil).Load(output)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bar", "Foo", "Lonely"}, record.Names())
	assert.Len(t, record["Foo"], 6)
	assert.Equal(t, "\n", record["Foo"][len(record["Foo"])-1])
}

func TestRunCommand_SkipSuffixAndThreshold(t *testing.T) {
	root := writeModel(t)
	work := t.TempDir()
	output := filepath.Join(work, "analysis.yaml")

	out, err := execute(t, nil, "run", root, "-c", filepath.Join(work, "config.yaml"),
		"-o", output, "--skip-suffix", "Bar", "--threshold", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Foo (2 file references)")
	assert.Contains(t, out, "2. Lonely (2 file references)")
	assert.Contains(t, out, "3. Thing_Extension (1 file references)")

	record, err := report.NewManager(nil).Load(output)
	require.NoError(t, err)
	assert.NotContains(t, record, "Bar")
	assert.Equal(t, 2, references.Count(record["Foo"]))
	assert.Equal(t, 1, references.Count(record["Thing_Extension"]))
}

func TestRunCommand_Quiet(t *testing.T) {
	root := writeModel(t)
	work := t.TempDir()

	out, err := execute(t, nil, "run", root, "-q", "-c", filepath.Join(work, "config.yaml"),
		"-o", filepath.Join(work, "out.json"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunCommand_RootNotFound(t *testing.T) {
	work := t.TempDir()

	_, err := execute(t, nil, "run", filepath.Join(work, "missing"), "-c", filepath.Join(work, "config.yaml"),
		"-o", filepath.Join(work, "out.json"))
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, statErr := os.Stat(filepath.Join(work, "out.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunCommand_InvalidBackend(t *testing.T) {
	work := t.TempDir()

	_, err := execute(t, nil, "run", work, "-c", filepath.Join(work, "config.yaml"), "--backend", "everything")
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestReviewCommand(t *testing.T) {
	root := writeModel(t)
	work := t.TempDir()
	configPath := filepath.Join(work, "config.yaml")
	output := filepath.Join(work, "model-analysis.json")

	_, err := execute(t, nil, "run", root, "-q", "-c", configPath, "-o", output)
	require.NoError(t, err)

	out, err := execute(t, nil, "review", output, "-c", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1. Bar (1 file references)")
	assert.Contains(t, out, "3 elements, 1 to review")

	out, err = execute(t, nil, "review", output, "-c", configPath, "--threshold", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Bar (1 file references)\n  2. Foo (2 file references)\n  3. Lonely (2 file references)\n")
	assert.Contains(t, out, "3 elements, 3 to review")
}

// reviewBlock returns the printed review list, up to the blank line that follows it.
func reviewBlock(t *testing.T, out string) string {
	t.Helper()
	start := strings.Index(out, "INSPECT LIST:")
	require.GreaterOrEqual(t, start, 0, out)
	block, _, _ := strings.Cut(out[start:], "\n\n")
	return block
}

func TestReviewCommand_MatchesRun(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml", ".txt"} {
		t.Run(ext, func(t *testing.T) {
			root := writeModel(t)
			work := t.TempDir()
			configPath := filepath.Join(work, "config.yaml")
			output := filepath.Join(work, "analysis"+ext)

			runOut, err := execute(t, nil, "run", root, "-c", configPath, "-o", output, "--threshold", "3")
			require.NoError(t, err)

			reviewOut, err := execute(t, nil, "review", output, "-c", configPath, "--threshold", "3")
			require.NoError(t, err)

			assert.Equal(t, reviewBlock(t, runOut), reviewBlock(t, reviewOut))
			assert.Contains(t, reviewOut, "2. Foo (2 file references)")
		})
	}
}

func TestReviewCommand_DumpNotFound(t *testing.T) {
	work := t.TempDir()

	_, err := execute(t, nil, "review", filepath.Join(work, "missing.yaml"), "-c", filepath.Join(work, "config.yaml"))
	assert.ErrorIs(t, err, analyzer.ErrDumpNotFound)
}

func TestCountCommand(t *testing.T) {
	work := t.TempDir()
	results := filepath.Join(work, "RansackResults.txt")
	require.NoError(t, os.WriteFile(results, []byte(
		"K:\\a.xml 1 KB XML File 1\r\n3 Foo\r\n\r\nK:\\b.xml 1 KB XML File 1\r\n7 Foo\r\n\r\n"), 0644))

	out, err := execute(t, nil, "count", results, "-c", filepath.Join(work, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, results+": 2 file references\n", out)

	out, err = execute(t, nil, "count", results, "-c", filepath.Join(work, "config.yaml"), "-t", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Below the threshold of 3")

	_, err = execute(t, nil, "count", filepath.Join(work, "missing.txt"), "-c", filepath.Join(work, "config.yaml"))
	assert.Error(t, err)
}

func TestInitCommand_Force(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".ma", "config.yaml")

	out, err := execute(t, nil, "init", "--force", "--root-dir", "/models", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, "Configuration written to "+configPath+"\n", out)

	cfg, err := config.NewManager(config.NewManagerParams{ConfigPath: configPath}).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/models", cfg.RootDir)
	assert.Equal(t, "builtin", cfg.Search.Backend)
}

func TestInitCommand_Interactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	prompter := mocks.NewMockPrompter(ctrl)
	gomock.InOrder(
		prompter.EXPECT().PromptForValue("Model root directory", ".").Return("/models", nil),
		prompter.EXPECT().PromptSelect("Choose a search backend:", gomock.Len(2)).
			Return(prompt.Choice{Value: "external"}, nil),
		prompter.EXPECT().PromptForValue("Search tool executable", "AgentRansack.exe").Return("/opt/ar", nil),
	)

	_, err := execute(t, prompter, "init", "-c", configPath)
	require.NoError(t, err)

	cfg, err := config.NewManager(config.NewManagerParams{ConfigPath: configPath}).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/models", cfg.RootDir)
	assert.Equal(t, "external", cfg.Search.Backend)
	assert.Equal(t, "/opt/ar", cfg.Search.ToolPath)
}

func TestInitCommand_ExistingConfigDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("root_dir: /keep\n"), 0644))

	prompter := mocks.NewMockPrompter(ctrl)
	prompter.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)

	out, err := execute(t, prompter, "init", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, "Initialization cancelled.\n", out)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "root_dir: /keep\n", string(data))
}

func TestConfigShowCommand(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("threshold: 4\nsearch:\n  timeout: 1m\n"), 0644))

	out, err := execute(t, nil, "config", "show", "-c", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "# "+configPath+"\n")
	assert.Contains(t, out, "threshold: 4\n")
	assert.Contains(t, out, "timeout: 1m0s\n")
	assert.Contains(t, out, "backend: builtin\n")

	out, err = execute(t, nil, "config", "path", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath+"\n", out)
}
