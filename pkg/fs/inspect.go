package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path exists. Errors other than "not exist" are returned.
func (f *realFS) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsDir reports whether path is a directory.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Walk visits the tree rooted at root in lexical order.
func (f *realFS) Walk(root string, fn func(path string, d os.DirEntry, err error) error) error {
	return filepath.WalkDir(root, fn)
}

func (f *realFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ExpandPath replaces a leading "~" or "~/" with the home directory.
// Other paths, "~user" included, are returned unchanged.
func (f *realFS) ExpandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, string(filepath.Separator))) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, rest), nil
}
