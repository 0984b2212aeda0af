// Package dataset loads raw spell datasets from their source
package dataset

//go:generate mockgen -destination=mock/mock_repository.go -package=datasetmock github.com/KirkDiggler/grimoire-api/internal/repositories/dataset Repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// Format is the serialization of a dataset
type Format string

const (
	// FormatJSON is the default dataset format
	FormatJSON Format = "json"
	// FormatYAML datasets are decoded with yaml.v3
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Repository defines the interface for reading a raw dataset
type Repository interface {
	// Load reads and decodes the whole dataset
	// Returns errors.Unavailable when the source cannot be read
	// Returns errors.DataLoss when the content cannot be decoded
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// LoadInput defines the input for loading a dataset
type LoadInput struct {
	// Empty for now, sources are configured on the repository
}

// LoadOutput defines the output for loading a dataset
type LoadOutput struct {
	Input *grimoire.RawInput
	// Source describes where the dataset came from, e.g. a path or redis key
	Source string
}

// SaveInput defines the input for storing a dataset
type SaveInput struct {
	Data   []byte
	Format Format
}

// SaveOutput defines the output for storing a dataset
type SaveOutput struct {
	Source  string
	Records int
}
