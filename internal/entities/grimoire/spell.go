// Package grimoire holds the spellbook's canonical entities
package grimoire

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

const (
	// EntityTypeSpell is the rpg-toolkit entity type for spells
	EntityTypeSpell = "spell"

	// PlaceholderName is used when a raw record carries no name-bearing key
	PlaceholderName = "Unnamed"

	// ElementUnknown is the element token for records without a recognized element
	ElementUnknown = "unknown"

	// IconUnknown is the icon for ElementUnknown and any unmapped element
	IconUnknown = "❔"
)

// Spell is the canonical, queryable spell record.
// Spells are created once per load and never mutated afterwards.
type Spell struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Element      string   `json:"element"`
	ElementLabel string   `json:"element_label"`
	Icon         string   `json:"icon"`
	Categories   []string `json:"categories"`
	Description  string   `json:"description"`
	Effect       string   `json:"effect,omitempty"`
	Cost         string   `json:"cost,omitempty"`
	Cooldown     string   `json:"cooldown,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Limitations  []string `json:"limitations"`
	MediaURL     string   `json:"media_url,omitempty"`
}

// GetID returns the spell's slug
func (s *Spell) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *Spell) GetType() string {
	return EntityTypeSpell
}

// HasMedia reports whether the spell has an image or animation attached
func (s *Spell) HasMedia() bool {
	return s.MediaURL != ""
}

var _ core.Entity = (*Spell)(nil)
