package fs

import (
	"os"
)

//go:generate mockgen -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used to scan model trees and persist results.
type FS interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)

	// IsDir reports whether path is a directory (model roots must be).
	IsDir(path string) (bool, error)

	// ReadFile reads a whole document or results file.
	ReadFile(path string) ([]byte, error)

	// Walk walks the file tree rooted at root in lexical order, calling fn for each entry.
	Walk(root string, fn func(path string, d os.DirEntry, err error) error) error

	// MkdirAll creates the parent directories of dumps, configs and results files.
	MkdirAll(path string, perm os.FileMode) error

	// GetHomeDir returns the user's home directory.
	GetHomeDir() (string, error)

	// IsNotExist reports whether err means the path is missing.
	IsNotExist(err error) bool

	// WriteFileAtomic replaces filename through a temporary file and a rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error

	// ExpandPath expands a leading ~ to the home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
