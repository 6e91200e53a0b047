package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Enumerate lists every document under root, sorted by path. Unreadable
// subdirectories are logged and skipped.
func (m *realModel) Enumerate(root string) ([]string, error) {
	isDir, err := m.fs.IsDir(root)
	if err != nil {
		if m.fs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat model root %s: %w", root, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}

	var paths []string
	err = m.fs.Walk(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Only the root itself is fatal
			if path == root {
				return walkErr
			}
			m.logger.Warnf("Skipping unreadable %s: %v", path, walkErr)
			if d == nil || d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), m.extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk model root %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
