package model

import (
	"github.com/lerenn/model-analyzer/pkg/fs"
	"github.com/lerenn/model-analyzer/pkg/logger"
)

//go:generate mockgen -source=model.go -destination=mocks/model.gen.go -package=mocks

// DefaultExtension is the extension of model-definition documents.
const DefaultExtension = ".xml"

// NameElement is the top-level field holding an element's identifier.
const NameElement = "Name"

// Model interface provides access to the documents of a model tree.
type Model interface {
	// Enumerate lists every document under root, sorted by path.
	Enumerate(root string) ([]string, error)
	// ExtractName returns the declared Name of the document at path.
	ExtractName(path string) (string, error)
}

// NewModelParams contains parameters for creating a new Model instance.
type NewModelParams struct {
	FS        fs.FS
	Logger    logger.Logger
	Extension string
}

type realModel struct {
	fs        fs.FS
	logger    logger.Logger
	extension string
}

// NewModel creates a new Model instance.
func NewModel(params NewModelParams) Model {
	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	extension := params.Extension
	if extension == "" {
		extension = DefaultExtension
	}

	return &realModel{
		fs:        fsInstance,
		logger:    log,
		extension: extension,
	}
}
