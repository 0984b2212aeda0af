package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/grimoire-api/internal/clients/external"
	externalmock "github.com/KirkDiggler/grimoire-api/internal/clients/external/mock"
	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
)

func TestSRDImportWritesDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := externalmock.NewMockImporter(ctrl)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "srd.yaml")

	level := 3
	importer.EXPECT().
		ImportSpells(ctx, &external.ImportSpellsInput{Level: &level, Class: "wizard", GroupByElement: true}).
		Return(&external.ImportSpellsOutput{Input: &grimoire.RawInput{Groups: []grimoire.RawGroup{
			{Element: "Fogo", Records: []grimoire.RawRecord{{"title": "Fireball"}}},
		}}}, nil)

	count, err := srdImport{Level: 3, Class: "wizard", Grouped: true, Output: path}.run(ctx, importer)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	written, err := dataset.Decode(data, dataset.FormatYAML)
	require.NoError(t, err)
	require.Len(t, written.Groups, 1)
	assert.Equal(t, "Fogo", written.Groups[0].Element)
	assert.Equal(t, "Fireball", written.Groups[0].Records[0]["title"])
}

func TestSRDImportAllLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := externalmock.NewMockImporter(ctrl)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "srd.json")

	importer.EXPECT().
		ImportSpells(ctx, &external.ImportSpellsInput{}).
		Return(&external.ImportSpellsOutput{Input: &grimoire.RawInput{Records: []grimoire.RawRecord{
			{"title": "Light"}, {"title": "Wish"},
		}}}, nil)

	count, err := srdImport{Level: -1, Output: path}.run(ctx, importer)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.FileExists(t, path)
}

func TestSRDImportRejectsLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := externalmock.NewMockImporter(ctrl)

	_, err := srdImport{Level: 10, Output: filepath.Join(t.TempDir(), "srd.json")}.run(context.Background(), importer)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSRDImportFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := externalmock.NewMockImporter(ctrl)
	path := filepath.Join(t.TempDir(), "srd.json")

	importer.EXPECT().
		ImportSpells(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("SRD API unreachable"))

	_, err := srdImport{Level: -1, Output: path}.run(context.Background(), importer)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.NoFileExists(t, path)
}
