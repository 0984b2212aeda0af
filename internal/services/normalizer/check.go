package normalizer

import (
	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// Report summarizes what normalizing a dataset produced
type Report struct {
	Records        int
	Spells         int
	Unnamed        int
	UnknownElement int
	DuplicateNames int
	// Duplicates lists each shadowed name once, in dataset order
	Duplicates []string
}

// Check normalizes input and reports records that degrade lookups
func Check(input *grimoire.RawInput) *Report {
	result := New().NormalizeAll(input)
	report := &Report{
		Records:    input.Len(),
		Spells:     len(result.Spells),
		Duplicates: []string{},
	}

	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, spell := range result.Spells {
		if spell.Name == grimoire.PlaceholderName {
			report.Unnamed++
		}
		if spell.Element == grimoire.ElementUnknown {
			report.UnknownElement++
		}

		key := Fold(spell.Name)
		if key == "" {
			continue
		}
		if seen[key] {
			report.DuplicateNames++
			if !reported[key] {
				reported[key] = true
				report.Duplicates = append(report.Duplicates, spell.Name)
			}
			continue
		}
		seen[key] = true
	}

	return report
}
