//go:build integration && !windows

package search

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lerenn/model-analyzer/pkg/references"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ransack.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestBuiltinSearcher_Search(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"AxClass/Foo.xml":     "<AxClass>\n\t<Name>Foo</Name>\n\n\t<Source>class Foo</Source>\n</AxClass>\n",
		"AxClass/Bar.xml":     "<AxClass>\r\n\t<Name>Bar</Name>\r\n\t<Source>Foo foo;</Source>\r\n</AxClass>\r\n",
		"AxTable/Other.xml":   "<AxTable><Name>Other</Name></AxTable>",
		"AxResource/logo.png": "Foo\x00\x01binary",
	})

	s := NewBuiltinSearcher(NewSearcherParams{})
	report, err := s.Search(context.Background(), "Foo", root)
	require.NoError(t, err)

	assert.Equal(t, 2, references.Count(report))
	require.Len(t, report, 7)

	assert.True(t, strings.HasPrefix(report[0], filepath.Join(root, "AxClass", "Bar.xml")+" "))
	assert.Contains(t, report[0], " XML File ")
	assert.True(t, strings.HasSuffix(report[0], " 1\n"))
	assert.Equal(t, "3 \t<Source>Foo foo;</Source>\n", report[1])
	assert.Equal(t, "\n", report[2])

	assert.True(t, strings.HasPrefix(report[3], filepath.Join(root, "AxClass", "Foo.xml")+" "))
	assert.True(t, strings.HasSuffix(report[3], " 2\n"))
	assert.Equal(t, "2 \t<Name>Foo</Name>\n", report[4])
	assert.Equal(t, "4 \t<Source>class Foo</Source>\n", report[5])
	assert.Equal(t, "\n", report[6])
}

func TestBuiltinSearcher_NoMatch(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.xml": "<a><Name>a</Name></a>"})

	s := NewBuiltinSearcher(NewSearcherParams{})
	report, err := s.Search(context.Background(), "Missing", root)

	require.NoError(t, err)
	assert.Empty(t, report)
	assert.Equal(t, 0, references.Count(report))
}

func TestBuiltinSearcher_IgnoreCase(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.xml": "<a><Name>rsmGCXTable</Name></a>",
		"b.xml": "select from RSMGCXTABLE",
	})

	s := NewBuiltinSearcher(NewSearcherParams{IgnoreCase: true})
	report, err := s.Search(context.Background(), "rsmgcxtable", root)
	require.NoError(t, err)
	assert.Equal(t, 2, references.Count(report))

	s = NewBuiltinSearcher(NewSearcherParams{})
	report, err = s.Search(context.Background(), "rsmgcxtable", root)
	require.NoError(t, err)
	assert.Equal(t, 0, references.Count(report))
}

func TestBuiltinSearcher_Exclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.xml":               "<a><Name>Foo</Name></a>",
		"model-analysis.json": `{"Foo": []}`,
	})

	s := NewBuiltinSearcher(NewSearcherParams{Exclude: []string{filepath.Join(root, "model-analysis.json")}})
	report, err := s.Search(context.Background(), "Foo", root)
	require.NoError(t, err)
	assert.Equal(t, 1, references.Count(report))
	assert.True(t, strings.HasPrefix(report[0], filepath.Join(root, "a.xml")+" "))
}

func TestBuiltinSearcher_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.xml": "Foo"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewBuiltinSearcher(NewSearcherParams{})
	_, err := s.Search(ctx, "Foo", root)

	assert.ErrorIs(t, err, ErrInvocation)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltinSearcher_MissingRoot(t *testing.T) {
	s := NewBuiltinSearcher(NewSearcherParams{})
	_, err := s.Search(context.Background(), "Foo", filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, ErrInvocation)
}

func TestExternalSearcher_Search(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Foo.xml": "<a><Name>Foo</Name></a>",
		"Bar.xml": "Foo is used here",
		"Baz.xml": "nothing",
	})
	results := filepath.Join(t.TempDir(), "out", "RansackResults.txt")
	tool := writeScript(t, `grep -l -r -- "$1" "$2" | sort | while read f; do
  printf '%s 1 KB XML File 1\r\n1 match\r\n\r\n' "$f"
done > "$3"`)

	s, err := NewExternalSearcher(NewSearcherParams{
		ToolPath:    tool,
		Args:        `"$SEARCH_TERM" "$SEARCH_ROOT" "$RESULTS_FILE"`,
		ResultsFile: results,
	})
	require.NoError(t, err)

	report, err := s.Search(context.Background(), "Foo", root)
	require.NoError(t, err)
	assert.Equal(t, 2, references.Count(report))
	assert.Len(t, report, 6)

	// The results file is overwritten, not appended
	report, err = s.Search(context.Background(), "nothing", root)
	require.NoError(t, err)
	assert.Equal(t, 1, references.Count(report))
}

func TestExternalSearcher_NoResultsFileWritten(t *testing.T) {
	results := filepath.Join(t.TempDir(), "RansackResults.txt")
	require.NoError(t, os.WriteFile(results, []byte("stale 1 KB 1\n\n"), 0644))
	tool := writeScript(t, "exit 0")

	s, err := NewExternalSearcher(NewSearcherParams{ToolPath: tool, ResultsFile: results})
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "Foo", t.TempDir())
	assert.ErrorIs(t, err, ErrReadResults)
}

func TestExternalSearcher_NonZeroExit(t *testing.T) {
	tool := writeScript(t, "echo 'license expired' >&2; exit 3")

	s, err := NewExternalSearcher(NewSearcherParams{
		ToolPath:    tool,
		ResultsFile: filepath.Join(t.TempDir(), "results.txt"),
	})
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "Foo", t.TempDir())
	assert.ErrorIs(t, err, ErrInvocation)
	assert.Contains(t, err.Error(), "license expired")
}

func TestExternalSearcher_Timeout(t *testing.T) {
	tool := writeScript(t, "sleep 10")

	s, err := NewExternalSearcher(NewSearcherParams{
		ToolPath:    tool,
		ResultsFile: filepath.Join(t.TempDir(), "results.txt"),
		Timeout:     100 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = s.Search(context.Background(), "Foo", t.TempDir())

	assert.ErrorIs(t, err, ErrInvocation)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 8*time.Second)
}
