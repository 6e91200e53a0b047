package fs

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
// Readers of filename either see the previous content or the new content, never a partial write.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	if filename == "" {
		return ErrEmptyFilename
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Remove the temporary file on any failure below
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	return os.Rename(tmpPath, filename)
}

func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove deletes a file or an empty directory.
func (f *realFS) Remove(path string) error {
	return os.Remove(path)
}
