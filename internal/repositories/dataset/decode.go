package dataset

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Keys that hold nested spell lists, for grouped datasets and object wrappers
var (
	listKeys    = []string{"magias", "spells"}
	elementKeys = []string{"element", "elemento"}
)

// Decode parses a dataset in any of the accepted shapes:
//   - a flat array of records
//   - an array of blocks, each with an element and a magias/spells list
//   - an object wrapping either of the above under magias/spells
//
// An empty document decodes to an empty dataset.
func Decode(data []byte, format Format) (*grimoire.RawInput, error) {
	var doc any
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON, "":
		if len(data) == 0 {
			return &grimoire.RawInput{}, nil
		}
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.InvalidArgumentf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode dataset")
	}

	return fromDocument(doc)
}

func fromDocument(doc any) (*grimoire.RawInput, error) {
	switch v := doc.(type) {
	case nil:
		return &grimoire.RawInput{}, nil
	case []any:
		return fromList(v), nil
	case map[string]any:
		for _, key := range listKeys {
			if list, ok := v[key].([]any); ok {
				return fromList(list), nil
			}
		}
		return nil, errors.DataLoss("dataset object has no magias or spells list")
	default:
		return nil, errors.DataLossf("unsupported dataset root of type %T", doc)
	}
}

// fromList treats the list as grouped when its first entry is a block. Bare
// records inside a grouped list keep their position in element-less groups.
func fromList(items []any) *grimoire.RawInput {
	out := &grimoire.RawInput{}
	if len(items) == 0 {
		return out
	}

	first, _ := items[0].(map[string]any)
	grouped := nestedList(first) != nil

	skipped := 0
	stray := false
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}

		if !grouped {
			out.Records = append(out.Records, grimoire.RawRecord(m))
			continue
		}

		list := nestedList(m)
		if list == nil {
			// a bare record between blocks joins an element-less group
			if stray {
				last := &out.Groups[len(out.Groups)-1]
				last.Records = append(last.Records, grimoire.RawRecord(m))
			} else {
				out.Groups = append(out.Groups, grimoire.RawGroup{Records: []grimoire.RawRecord{grimoire.RawRecord(m)}})
			}
			stray = true
			continue
		}
		stray = false
		group := grimoire.RawGroup{Element: groupElement(m)}
		for _, entry := range list {
			if record, ok := entry.(map[string]any); ok {
				group.Records = append(group.Records, grimoire.RawRecord(record))
			} else {
				skipped++
			}
		}
		out.Groups = append(out.Groups, group)
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("dataset entries ignored, not objects")
	}
	return out
}

func nestedList(m map[string]any) []any {
	for _, key := range listKeys {
		if list, ok := m[key].([]any); ok {
			return list
		}
	}
	return nil
}

func groupElement(m map[string]any) string {
	for _, key := range elementKeys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Encode serializes a dataset. Grouped datasets become element blocks with a
// magias list, flat ones a plain array.
func Encode(input *grimoire.RawInput, format Format) ([]byte, error) {
	var doc any = []grimoire.RawRecord{}
	switch {
	case input.IsGrouped():
		blocks := make([]map[string]any, 0, len(input.Groups))
		for _, g := range input.Groups {
			blocks = append(blocks, map[string]any{
				"element": g.Element,
				"magias":  g.Records,
			})
		}
		doc = blocks
	case input != nil && input.Records != nil:
		doc = input.Records
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON, "":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, errors.InvalidArgumentf("unsupported dataset format %q", format)
	}
}
