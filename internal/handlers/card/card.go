// Package card renders spells into display-ready fields for chat and CLI frontends
package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

const (
	// FieldLimit is the maximum rendered length of a single card field
	FieldLimit = 1024
	// ListLimit is the maximum rendered length of a result listing
	ListLimit = 4000
	// ChoiceNameLimit is the maximum length of an autocomplete display name
	ChoiceNameLimit = 100

	listCut          = 3990
	listTruncated    = "\n... (list truncated)"
	ellipsis         = "..."
	notSpecified     = "Not specified"
	unknownValue     = "?"
	noLimitations    = "None."
	noCategories     = "None"
	limitationBullet = "- "
	resultBullet     = "• "
)

// Card is the presentation view of a spell. Every field is non-empty except MediaURL.
type Card struct {
	Title       string `json:"title"`
	Element     string `json:"element"`
	Description string `json:"description"`
	Effect      string `json:"effect"`
	Cost        string `json:"cost"`
	Cooldown    string `json:"cooldown"`
	Duration    string `json:"duration"`
	Limitations string `json:"limitations"`
	Categories  string `json:"categories"`
	MediaURL    string `json:"media_url,omitempty"`
}

// Choice is one autocomplete entry. Value always carries the full name.
type Choice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FromSpell builds the card for a spell
func FromSpell(spell *grimoire.Spell) *Card {
	if spell == nil {
		return nil
	}

	icon := spell.Icon
	if icon == "" {
		icon = grimoire.IconUnknown
	}

	return &Card{
		Title:       field(icon+" "+spell.Name, ""),
		Element:     field(icon+" "+spell.ElementLabel, ""),
		Description: field(spell.Description, notSpecified),
		Effect:      field(spell.Effect, notSpecified),
		Cost:        field(spell.Cost, unknownValue),
		Cooldown:    field(spell.Cooldown, unknownValue),
		Duration:    field(spell.Duration, unknownValue),
		Limitations: field(limitations(spell.Limitations), ""),
		Categories:  field(strings.Join(spell.Categories, ", "), noCategories),
		MediaURL:    spell.MediaURL,
	}
}

// field applies the placeholder for empty values and the FieldLimit cap
func field(value, placeholder string) string {
	return Truncate(orDefault(value, placeholder), FieldLimit)
}

// Text renders the card as plain text
func (c *Card) Text() string {
	var b strings.Builder
	b.WriteString(c.Title + "\n")
	fmt.Fprintf(&b, "Element: %s\n", c.Element)
	fmt.Fprintf(&b, "Description:\n%s\n", c.Description)
	fmt.Fprintf(&b, "Effect: %s\n", c.Effect)
	fmt.Fprintf(&b, "Cost: %s | Cooldown: %s | Duration: %s\n", c.Cost, c.Cooldown, c.Duration)
	fmt.Fprintf(&b, "Limitations:\n%s\n", c.Limitations)
	fmt.Fprintf(&b, "Categories: %s", c.Categories)
	if c.MediaURL != "" {
		fmt.Fprintf(&b, "\nMedia: %s", c.MediaURL)
	}
	return b.String()
}

// Truncate cuts s to at most limit characters, marking the cut with "..."
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string([]rune(s)[:limit])
	}
	return string([]rune(s)[:limit-len(ellipsis)]) + ellipsis
}

// ResultList renders names as a bulleted listing capped at ListLimit characters
func ResultList(names []string) string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = resultBullet + name
	}

	text := strings.Join(lines, "\n")
	if utf8.RuneCountInString(text) > ListLimit {
		text = string([]rune(text)[:listCut]) + listTruncated
	}
	return text
}

// Names returns the display names of spells in order
func Names(spells []*grimoire.Spell) []string {
	out := make([]string, len(spells))
	for i, spell := range spells {
		out[i] = spell.Name
	}
	return out
}

// Choices builds autocomplete entries with display names capped at ChoiceNameLimit
func Choices(names []string) []Choice {
	out := make([]Choice, len(names))
	for i, name := range names {
		display := name
		if utf8.RuneCountInString(display) > ChoiceNameLimit {
			display = string([]rune(display)[:ChoiceNameLimit])
		}
		out[i] = Choice{Name: display, Value: name}
	}
	return out
}

func limitations(items []string) string {
	if len(items) == 0 {
		return noLimitations
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = limitationBullet + item
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
