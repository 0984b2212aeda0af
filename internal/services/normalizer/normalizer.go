// Package normalizer turns raw, schema-inconsistent spell records into
// canonical grimoire spells. Normalization is total: malformed or missing
// fields degrade to sentinels and never produce an error.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// fallbackSlug is used when a name has no slug-safe characters
const fallbackSlug = "spell"

// Result is the output of normalizing a whole dataset
type Result struct {
	// Spells in load order
	Spells []*grimoire.Spell
	// ByName maps folded names to the first spell carrying them
	ByName map[string]*grimoire.Spell
}

// Normalizer converts raw dataset records into canonical spells
//
//go:generate mockgen -destination=mock/mock_normalizer.go -package=normalizermock github.com/KirkDiggler/grimoire-api/internal/services/normalizer Normalizer
type Normalizer interface {
	// Normalize maps one raw record to one spell. groupElement is inherited when
	// the record declares no element of its own.
	Normalize(raw grimoire.RawRecord, groupElement string) *grimoire.Spell

	// NormalizeAll normalizes every record of a dataset, assigning unique IDs
	NormalizeAll(input *grimoire.RawInput) *Result
}

type normalizer struct{}

// New creates a normalizer
func New() Normalizer {
	return &normalizer{}
}

// Normalize implements Normalizer
func (n *normalizer) Normalize(raw grimoire.RawRecord, groupElement string) *grimoire.Spell {
	name := singleLine(Sanitize(firstString(raw, nameAliases...)))
	if name == "" {
		name = grimoire.PlaceholderName
	}

	element, label, icon := resolveElement(raw, groupElement)

	descRaw := firstString(raw, descriptionAliases...)
	labeled := extractLabels(Sanitize(descRaw))

	media := firstString(raw, mediaAliases...)
	if media != "" {
		if embedded := ExtractMedia(media); embedded != "" {
			media = embedded
		}
	} else {
		media = ExtractMedia(descRaw)
	}

	return &grimoire.Spell{
		ID:           slugOrFallback(name),
		Name:         name,
		Element:      element,
		ElementLabel: label,
		Icon:         icon,
		Categories:   normalizeCategories(raw),
		Description:  labeled.description,
		Effect:       explicitOrLabeled(raw, effectAliases, labeled, fieldEffect),
		Cost:         explicitOrLabeled(raw, costAliases, labeled, fieldCost),
		Cooldown:     explicitOrLabeled(raw, cooldownAliases, labeled, fieldCooldown),
		Duration:     explicitOrLabeled(raw, durationAliases, labeled, fieldDuration),
		Limitations:  mergeLimitations(explicitLimitations(raw), splitLimitations(labeled.get(fieldLimitations))),
		MediaURL:     media,
	}
}

// NormalizeAll implements Normalizer
func (n *normalizer) NormalizeAll(input *grimoire.RawInput) *Result {
	result := &Result{
		Spells: make([]*grimoire.Spell, 0, input.Len()),
		ByName: make(map[string]*grimoire.Spell),
	}
	if input == nil {
		return result
	}

	ids := make(map[string]bool)
	add := func(raw grimoire.RawRecord, groupElement string) {
		spell := n.Normalize(raw, groupElement)
		spell.ID = uniqueID(ids, spell.ID)

		key := Fold(spell.Name)
		if _, exists := result.ByName[key]; !exists && key != "" {
			result.ByName[key] = spell
		}
		result.Spells = append(result.Spells, spell)
	}

	for _, raw := range input.Records {
		add(raw, "")
	}
	for _, group := range input.Groups {
		for _, raw := range group.Records {
			add(raw, group.Element)
		}
	}

	return result
}

func resolveElement(raw grimoire.RawRecord, groupElement string) (element, label, icon string) {
	source := firstString(raw, elementAliases...)
	if source == "" {
		source = strings.TrimSpace(groupElement)
	}
	source = singleLine(Sanitize(source))

	element = Fold(source)
	if element == "" {
		return grimoire.ElementUnknown, TitleCase(grimoire.ElementUnknown), grimoire.IconUnknown
	}

	return element, TitleCase(Clean(source)), iconFor(element)
}

// iconFor looks up the folded element, then its first token
func iconFor(element string) string {
	if icon, ok := grimoire.ElementIcon(element); ok {
		return icon
	}
	if fields := strings.Fields(element); len(fields) > 0 {
		if icon, ok := grimoire.ElementIcon(fields[0]); ok {
			return icon
		}
	}
	return grimoire.IconUnknown
}

func normalizeCategories(raw grimoire.RawRecord) []string {
	out := make([]string, 0)
	v, ok := firstPresent(raw, categoryAliases...)
	if !ok {
		return out
	}

	for _, entry := range categoryEntries(v) {
		if c := TitleCase(Clean(Sanitize(entry))); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// explicitOrLabeled prefers an explicit raw field over a label found in the description
func explicitOrLabeled(raw grimoire.RawRecord, aliases []string, labeled *labeledText, field labelField) string {
	if explicit := Sanitize(firstString(raw, aliases...)); explicit != "" {
		return explicit
	}
	return labeled.get(field)
}

func explicitLimitations(raw grimoire.RawRecord) []string {
	v, ok := firstPresent(raw, limitationAliases...)
	if !ok {
		return nil
	}

	if s, isString := v.(string); isString {
		return splitLines(Sanitize(s))
	}

	var out []string
	for _, entry := range asList(v) {
		if entry = trimBullet(Sanitize(entry)); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func slugOrFallback(name string) string {
	if slug := Slug(name); slug != "" {
		return slug
	}
	return fallbackSlug
}

// uniqueID suffixes id with -2, -3, ... until it is unused and records it
func uniqueID(used map[string]bool, id string) string {
	candidate := id
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", id, i)
	}
	used[candidate] = true
	return candidate
}
