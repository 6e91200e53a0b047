package search

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/lerenn/model-analyzer/pkg/fs"
)

// modTimeLayout matches the timestamp columns of the desktop tool's report.
const modTimeLayout = "1/2/2006 3:04:05 PM"

type builtinSearcher struct {
	fs         fs.FS
	ignoreCase bool
	exclude    map[string]bool
}

// NewBuiltinSearcher creates a Searcher that scans files in-process and emits
// the same file-grouped report as the external tool.
func NewBuiltinSearcher(params NewSearcherParams) Searcher {
	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}
	exclude := make(map[string]bool, len(params.Exclude))
	for _, p := range params.Exclude {
		if abs, err := filepath.Abs(p); err == nil {
			exclude[abs] = true
		}
	}
	return &builtinSearcher{fs: fsInstance, ignoreCase: params.IgnoreCase, exclude: exclude}
}

// Search scans every regular text file under root, in lexical order.
// Unreadable subdirectories and files are skipped.
func (s *builtinSearcher) Search(ctx context.Context, term, root string) ([]string, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	var report []string
	err := s.fs.Walk(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Unreadable subtrees are not searched
			if d == nil || d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() || s.excluded(path) {
			return nil
		}

		data, err := s.fs.ReadFile(path)
		if os.IsPermission(err) {
			return nil
		}
		if err != nil {
			return err
		}
		// Binary files are not searched
		if bytes.IndexByte(data, 0) >= 0 || !s.contains(string(data), term) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		report = append(report, s.fileGroup(path, info, data, term)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvocation, err)
	}

	return report, nil
}

// fileGroup renders one group: metadata line, matched-line excerpts, blank terminator.
func (s *builtinSearcher) fileGroup(path string, info os.FileInfo, data []byte, term string) []string {
	var excerpts []string
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	for i, line := range strings.Split(content, "\n") {
		if s.contains(line, term) {
			excerpts = append(excerpts, fmt.Sprintf("%d %s\n", i+1, line))
		}
	}

	group := make([]string, 0, len(excerpts)+2)
	group = append(group, fmt.Sprintf("%s %s %s %s %d\n",
		path,
		humanize.Bytes(uint64(info.Size())),
		fileType(path),
		info.ModTime().Format(modTimeLayout),
		len(excerpts),
	))
	group = append(group, excerpts...)
	return append(group, "\n")
}

func (s *builtinSearcher) excluded(path string) bool {
	if len(s.exclude) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && s.exclude[abs]
}

func (s *builtinSearcher) contains(text, term string) bool {
	if s.ignoreCase {
		return strings.Contains(strings.ToLower(text), strings.ToLower(term))
	}
	return strings.Contains(text, term)
}

func fileType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "File"
	}
	return strings.ToUpper(ext) + " File"
}
