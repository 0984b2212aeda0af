package dataset

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

type fileRepository struct {
	path   string
	format Format
}

// FileConfig contains configuration for the file dataset repository
type FileConfig struct {
	Path string
	// Format overrides detection from the file extension
	Format Format
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	if cfg.Format != "" {
		errors.ValidateEnum("format", string(cfg.Format), []string{string(FormatJSON), string(FormatYAML)}, vb)
	}
	return vb.Build()
}

// NewFile creates a repository reading the dataset from a local file
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		format = FormatFromPath(cfg.Path)
	}

	return &fileRepository{
		path:   cfg.Path,
		format: format,
	}, nil
}

func (r *fileRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ContextCode(err), "dataset load canceled")
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read dataset %s", r.path).
			WithMeta("path", r.path)
	}

	input, err := Decode(data, r.format)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", r.path).
			WithMeta("path", r.path)
	}

	log.Debug().
		Str("path", r.path).
		Int("records", input.Len()).
		Bool("grouped", input.IsGrouped()).
		Msg("dataset file loaded")

	return &LoadOutput{
		Input:  input,
		Source: "file:" + r.path,
	}, nil
}
