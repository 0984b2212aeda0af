package normalizer

import (
	"strings"
)

type labelField int

const (
	fieldEffect labelField = iota
	fieldCost
	fieldCooldown
	fieldDuration
	fieldLimitations

	labelFieldCount
)

// maxLabelHead bounds how far into a line a label may reach before the colon
const maxLabelHead = 40

type label struct {
	field     labelField
	spellings []string
	multiline bool
}

// labels lists every inline label recognized inside descriptions.
// Add spellings here, matching is accent and case insensitive.
var labels = []label{
	{field: fieldEffect, spellings: []string{"Efeito", "Effect"}},
	{field: fieldCost, spellings: []string{"Custo", "Mana", "Cost"}},
	{field: fieldCooldown, spellings: []string{"Cooldown", "CD", "Recarga"}},
	{field: fieldDuration, spellings: []string{"Duração", "Duracao", "Duration"}},
	{field: fieldLimitations, spellings: []string{"Limitações", "Limitacoes", "Limitations"}, multiline: true},
}

var labelsBySpelling = func() map[string]label {
	out := make(map[string]label)
	for _, l := range labels {
		for _, s := range l.spellings {
			out[Fold(s)] = l
		}
	}
	return out
}()

// labeledText is a description split into its narrative and labeled parts
type labeledText struct {
	description string
	values      [labelFieldCount]string
}

func (t *labeledText) get(f labelField) string {
	return t.values[f]
}

// matchLabel reports whether line opens with a recognized label and returns
// whatever follows the colon
func matchLabel(line string) (label, string, bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 || i > maxLabelHead {
		return label{}, "", false
	}

	head := strings.Trim(line[:i], " \t*_-•")
	l, ok := labelsBySpelling[Fold(head)]
	if !ok {
		return label{}, "", false
	}

	return l, strings.Trim(line[i+1:], " \t*_"), true
}

func isLabelLine(line string) bool {
	_, _, ok := matchLabel(line)
	return ok
}

// extractLabels scans sanitized text line by line. The first occurrence of a
// label carrying a value wins. Single line labels take the rest of their line,
// or the next unlabeled line when their own is empty. Multi-line labels run to
// the next label or the end of the text. The narrative kept as the description
// is every unlabeled line before the first effect label.
func extractLabels(text string) *labeledText {
	out := &labeledText{}
	if text == "" {
		return out
	}

	lines := strings.Split(text, "\n")
	narrative := make([]string, 0, len(lines))
	pastEffect := false

	for i := 0; i < len(lines); i++ {
		l, value, ok := matchLabel(lines[i])
		if !ok {
			if !pastEffect {
				narrative = append(narrative, lines[i])
			}
			continue
		}

		if l.field == fieldEffect {
			pastEffect = true
		}

		switch {
		case l.multiline:
			block := make([]string, 0, 4)
			if value != "" {
				block = append(block, value)
			}
			for i+1 < len(lines) && !isLabelLine(lines[i+1]) {
				i++
				block = append(block, lines[i])
			}
			value = strings.TrimSpace(strings.Join(block, "\n"))
		case value == "":
			if i+1 < len(lines) && lines[i+1] != "" && !isLabelLine(lines[i+1]) {
				i++
				value = strings.Trim(lines[i], " \t*_")
			}
		}

		if out.values[l.field] == "" {
			out.values[l.field] = value
		}
	}

	out.description = normalizeLines(strings.Join(narrative, "\n"))
	return out
}
