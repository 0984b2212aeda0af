package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	"github.com/KirkDiggler/grimoire-api/internal/testutils"
)

func TestDecodeShapes(t *testing.T) {
	t.Run("flat array", func(t *testing.T) {
		input, err := dataset.Decode([]byte(testutils.SampleDatasetJSON), dataset.FormatJSON)
		require.NoError(t, err)

		assert.False(t, input.IsGrouped())
		require.Len(t, input.Records, 4)
		assert.Equal(t, "Fireball", input.Records[0]["title"])
	})

	t.Run("grouped yaml", func(t *testing.T) {
		input, err := dataset.Decode([]byte(testutils.SampleGroupedDatasetYAML), dataset.FormatYAML)
		require.NoError(t, err)

		assert.True(t, input.IsGrouped())
		require.Len(t, input.Groups, 2)
		assert.Equal(t, "Fogo", input.Groups[0].Element)
		assert.Len(t, input.Groups[0].Records, 2)
		assert.Equal(t, "Terra", input.Groups[1].Element)
		assert.Equal(t, 3, input.Len())
	})

	t.Run("grouped json with spells key", func(t *testing.T) {
		input, err := dataset.Decode([]byte(`[{"element":"ar","spells":[{"title":"Rajada"}, 7]}, "junk"]`), dataset.FormatJSON)
		require.NoError(t, err)

		require.Len(t, input.Groups, 1)
		assert.Equal(t, "ar", input.Groups[0].Element)
		assert.Len(t, input.Groups[0].Records, 1)
	})

	t.Run("bare records between blocks are kept", func(t *testing.T) {
		input, err := dataset.Decode([]byte(`[
			{"element":"Fogo","magias":[{"title":"Fireball"}]},
			{"title":"Wish"},
			{"title":"Blink","element":"Dimensional"},
			{"element":"Terra","magias":[{"title":"Quake"}]}
		]`), dataset.FormatJSON)
		require.NoError(t, err)

		require.Len(t, input.Groups, 3)
		assert.Equal(t, "Fogo", input.Groups[0].Element)
		assert.Equal(t, "", input.Groups[1].Element)
		require.Len(t, input.Groups[1].Records, 2)
		assert.Equal(t, "Wish", input.Groups[1].Records[0]["title"])
		assert.Equal(t, "Dimensional", input.Groups[1].Records[1]["element"])
		assert.Equal(t, "Terra", input.Groups[2].Element)
		assert.Equal(t, 4, input.Len())
	})

	t.Run("object wrapper", func(t *testing.T) {
		input, err := dataset.Decode([]byte(`{"magias":[{"nome":"Luz"}]}`), dataset.FormatJSON)
		require.NoError(t, err)

		require.Len(t, input.Records, 1)
		assert.Equal(t, "Luz", input.Records[0]["nome"])
	})

	t.Run("empty array", func(t *testing.T) {
		input, err := dataset.Decode([]byte(`[]`), dataset.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, 0, input.Len())
	})

	t.Run("empty document", func(t *testing.T) {
		input, err := dataset.Decode(nil, dataset.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, 0, input.Len())
	})
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		data   string
		format dataset.Format
		code   errors.Code
	}{
		{name: "malformed json", data: `[{"title":`, format: dataset.FormatJSON, code: errors.CodeDataLoss},
		{name: "malformed yaml", data: "title: [unclosed", format: dataset.FormatYAML, code: errors.CodeDataLoss},
		{name: "scalar root", data: `42`, format: dataset.FormatJSON, code: errors.CodeDataLoss},
		{name: "object without list", data: `{"title":"x"}`, format: dataset.FormatJSON, code: errors.CodeDataLoss},
		{name: "unknown format", data: `[]`, format: dataset.Format("toml"), code: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Decode([]byte(tc.data), tc.format)
			require.Error(t, err)
			assert.Equal(t, tc.code, errors.GetCode(err))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	grouped := &grimoire.RawInput{
		Groups: []grimoire.RawGroup{
			{Element: "fogo", Records: []grimoire.RawRecord{{"titulo": "Chama"}}},
		},
	}

	for _, format := range []dataset.Format{dataset.FormatJSON, dataset.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := dataset.Encode(grouped, format)
			require.NoError(t, err)

			decoded, err := dataset.Decode(data, format)
			require.NoError(t, err)
			require.Len(t, decoded.Groups, 1)
			assert.Equal(t, "fogo", decoded.Groups[0].Element)
			assert.Equal(t, "Chama", decoded.Groups[0].Records[0]["titulo"])
		})
	}

	t.Run("empty dataset encodes as an empty array", func(t *testing.T) {
		data, err := dataset.Encode(&grimoire.RawInput{}, dataset.FormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, dataset.FormatYAML, dataset.FormatFromPath("grimorio.yml"))
	assert.Equal(t, dataset.FormatYAML, dataset.FormatFromPath("/data/GRIMORIO.YAML"))
	assert.Equal(t, dataset.FormatJSON, dataset.FormatFromPath("grimorio_completo.json"))
	assert.Equal(t, dataset.FormatJSON, dataset.FormatFromPath("grimorio"))
}
