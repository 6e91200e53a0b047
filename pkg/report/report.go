package report

import (
	"fmt"

	"github.com/lerenn/model-analyzer/pkg/fs"
)

//go:generate mockgen -source=report.go -destination=mocks/report.gen.go -package=mocks

// Manager interface persists reference records.
type Manager interface {
	// Save writes the record to path, replacing any previous content.
	Save(path string, record Record) error
	// Load reads a record previously written by Save.
	Load(path string) (Record, error)
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new report Manager instance.
func NewManager(fsInstance fs.FS) Manager {
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}
	return &realManager{fs: fsInstance}
}

// Save writes the record to path, replacing any previous content.
func (m *realManager) Save(path string, record Record) error {
	if path == "" {
		return ErrPathEmpty
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := encode(format, record)
	if err != nil {
		return fmt.Errorf("failed to encode reference record: %w", err)
	}

	if err := m.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write reference record to %s: %w", path, err)
	}

	return nil
}

// Load reads a record previously written by Save.
func (m *realManager) Load(path string) (Record, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference record from %s: %w", path, err)
	}

	return decode(format, data)
}
