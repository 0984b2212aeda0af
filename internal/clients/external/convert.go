package external

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// damageElements maps lowercased SRD damage types to grimoire element labels
var damageElements = map[string]string{
	"fire":        "Fogo",
	"cold":        "Água",
	"acid":        "Terra",
	"poison":      "Terra",
	"thunder":     "Vento",
	"lightning":   "Raio",
	"radiant":     "Luz",
	"necrotic":    "Escuridão",
	"force":       "Arcano",
	"psychic":     "Arcano",
	"bludgeoning": "Terra",
}

// schoolElements is the fallback for spells that deal no damage
var schoolElements = map[string]string{
	"conjuration":   "Dimensional",
	"enchantment":   "Status",
	"illusion":      "Status",
	"transmutation": "Tempo",
	"necromancy":    "Escuridão",
	"abjuration":    "Luz",
	"evocation":     "Arcano",
	"divination":    "Arcano",
}

// elementFor picks the element label for a spell. Empty means unknown.
func elementFor(spell *entities.Spell) string {
	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageType != nil {
		if el, ok := damageElements[strings.ToLower(spell.SpellDamage.SpellDamageType.Name)]; ok {
			return el
		}
	}
	if spell.SpellSchool != nil {
		if el, ok := schoolElements[strings.ToLower(spell.SpellSchool.Name)]; ok {
			return el
		}
	}
	return ""
}

func levelLabel(level int) string {
	if level <= 0 {
		return "Cantrip"
	}
	return fmt.Sprintf("Level %d", level)
}

// spellToRecord builds a raw record using the dataset's own key names
func spellToRecord(spell *entities.Spell) grimoire.RawRecord {
	rec := grimoire.RawRecord{
		"title": spell.Name,
	}

	if el := elementFor(spell); el != "" {
		rec["element"] = el
	}

	categories := []any{}
	if spell.SpellSchool != nil && spell.SpellSchool.Name != "" {
		categories = append(categories, spell.SpellSchool.Name)
	}
	categories = append(categories, levelLabel(spell.SpellLevel))
	for _, class := range spell.SpellClasses {
		if class != nil && class.Name != "" {
			categories = append(categories, class.Name)
		}
	}
	rec["categories"] = categories

	if desc := spellDescription(spell); desc != "" {
		rec["description"] = desc
	}
	if effect := spellEffect(spell); effect != "" {
		rec["effect"] = effect
	}
	if spell.SpellLevel > 0 {
		rec["cost"] = fmt.Sprintf("Spell slot level %d", spell.SpellLevel)
	} else {
		rec["cost"] = "None (cantrip)"
	}
	if spell.Duration != "" {
		rec["duration"] = spell.Duration
	}

	var limitations []any
	if spell.Concentration {
		limitations = append(limitations, "Requires concentration")
	}
	if spell.Ritual {
		limitations = append(limitations, "Can be cast as a ritual")
	}
	if len(limitations) > 0 {
		rec["limitations"] = limitations
	}

	return rec
}

func spellDescription(spell *entities.Spell) string {
	var lines []string
	if spell.CastingTime != "" {
		lines = append(lines, "Casting Time: "+spell.CastingTime)
	}
	if spell.Range != "" {
		lines = append(lines, "Range: "+spell.Range)
	}
	if spell.AreaOfEffect != nil {
		lines = append(lines, fmt.Sprintf("Area: %s (%d ft)", spell.AreaOfEffect.Type, spell.AreaOfEffect.Size))
	}
	return strings.Join(lines, "\n")
}

// spellEffect summarizes damage at the spell's base slot and any saving throw
func spellEffect(spell *entities.Spell) string {
	var parts []string

	if spell.SpellDamage != nil {
		damageType := ""
		if spell.SpellDamage.SpellDamageType != nil {
			damageType = spell.SpellDamage.SpellDamageType.Name
		}
		base := ""
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			base = baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel)
		}
		switch {
		case base != "" && damageType != "":
			parts = append(parts, fmt.Sprintf("%s %s damage", base, strings.ToLower(damageType)))
		case base != "":
			parts = append(parts, base+" damage")
		case damageType != "":
			parts = append(parts, damageType+" damage")
		}
	}

	if spell.DC != nil {
		save := "Saving throw"
		if spell.DC.DCType != nil && spell.DC.DCType.Name != "" {
			save = spell.DC.DCType.Name + " save"
		}
		if spell.DC.DCSuccess != "" {
			save += fmt.Sprintf(" (%s on success)", spell.DC.DCSuccess)
		}
		parts = append(parts, save)
	}

	return strings.Join(parts, "; ")
}

// baseDamage returns the damage at the spell's minimum casting level
func baseDamage(level int, slots *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return slots.FirstLevel
	case 2:
		return slots.SecondLevel
	case 3:
		return slots.ThirdLevel
	case 4:
		return slots.FourthLevel
	case 5:
		return slots.FifthLevel
	case 6:
		return slots.SixthLevel
	case 7:
		return slots.SeventhLevel
	case 8:
		return slots.EighthLevel
	case 9:
		return slots.NinthLevel
	default:
		return ""
	}
}

// groupByElement moves each record's element onto its block, keeping first-seen block order
func groupByElement(records []grimoire.RawRecord) []grimoire.RawGroup {
	var groups []grimoire.RawGroup
	index := make(map[string]int)

	for _, rec := range records {
		el, _ := rec["element"].(string)
		stripped := make(grimoire.RawRecord, len(rec))
		for k, v := range rec {
			if k != "element" {
				stripped[k] = v
			}
		}

		pos, ok := index[el]
		if !ok {
			pos = len(groups)
			index[el] = pos
			groups = append(groups, grimoire.RawGroup{Element: el})
		}
		groups[pos].Records = append(groups[pos].Records, stripped)
	}
	return groups
}
