// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// SpellBuilder provides a fluent interface for building test Spell instances
type SpellBuilder struct {
	spell *grimoire.Spell
}

// NewSpellBuilder creates a new builder with minimal defaults
func NewSpellBuilder() *SpellBuilder {
	return &SpellBuilder{
		spell: &grimoire.Spell{
			ID:           "test-spell",
			Name:         "Test Spell",
			Element:      grimoire.ElementUnknown,
			ElementLabel: "Unknown",
			Icon:         grimoire.IconUnknown,
			Categories:   []string{},
			Limitations:  []string{},
		},
	}
}

// WithID sets the spell ID
func (b *SpellBuilder) WithID(id string) *SpellBuilder {
	b.spell.ID = id
	return b
}

// WithName sets the display name
func (b *SpellBuilder) WithName(name string) *SpellBuilder {
	b.spell.Name = name
	return b
}

// WithElement sets the folded element token, its label and icon
func (b *SpellBuilder) WithElement(token, label, icon string) *SpellBuilder {
	b.spell.Element = token
	b.spell.ElementLabel = label
	b.spell.Icon = icon
	return b
}

// WithCategories sets the categories
func (b *SpellBuilder) WithCategories(categories ...string) *SpellBuilder {
	b.spell.Categories = categories
	return b
}

// WithDescription sets the description
func (b *SpellBuilder) WithDescription(description string) *SpellBuilder {
	b.spell.Description = description
	return b
}

// WithEffect sets the effect
func (b *SpellBuilder) WithEffect(effect string) *SpellBuilder {
	b.spell.Effect = effect
	return b
}

// WithCost sets the cost
func (b *SpellBuilder) WithCost(cost string) *SpellBuilder {
	b.spell.Cost = cost
	return b
}

// WithCooldown sets the cooldown
func (b *SpellBuilder) WithCooldown(cooldown string) *SpellBuilder {
	b.spell.Cooldown = cooldown
	return b
}

// WithDuration sets the duration
func (b *SpellBuilder) WithDuration(duration string) *SpellBuilder {
	b.spell.Duration = duration
	return b
}

// WithLimitations sets the limitations
func (b *SpellBuilder) WithLimitations(limitations ...string) *SpellBuilder {
	b.spell.Limitations = limitations
	return b
}

// WithMediaURL sets the media URL
func (b *SpellBuilder) WithMediaURL(url string) *SpellBuilder {
	b.spell.MediaURL = url
	return b
}

// Build returns the built spell
func (b *SpellBuilder) Build() *grimoire.Spell {
	return b.spell
}
