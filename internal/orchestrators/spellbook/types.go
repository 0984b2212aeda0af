package spellbook

import (
	"time"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// GetSpellInput defines the request for an exact name lookup
type GetSpellInput struct {
	Name string
}

// GetSpellOutput defines the response for an exact name lookup
type GetSpellOutput struct {
	Spell *grimoire.Spell
}

// SuggestSpellsInput defines the request for autocomplete suggestions
type SuggestSpellsInput struct {
	Query string
	// Limit caps the number of names, values outside 1..MaxSuggestions mean MaxSuggestions
	Limit int
}

// SuggestSpellsOutput defines the response for autocomplete suggestions
type SuggestSpellsOutput struct {
	Names []string
}

// SearchSpellsInput defines the request for a free text search
type SearchSpellsInput struct {
	Term string
}

// SearchSpellsOutput defines the response for a free text search
type SearchSpellsOutput struct {
	Spells []*grimoire.Spell
	// ElementScoped is set when the term named an element and matching was restricted
	ElementScoped bool
}

// ListSpellsInput defines the request for a filtered listing
type ListSpellsInput struct {
	Filter string
}

// ListSpellsOutput defines the response for a filtered listing
type ListSpellsOutput struct {
	Spells []*grimoire.Spell
}

// RandomSpellInput defines the request for a random pick
type RandomSpellInput struct{}

// RandomSpellOutput defines the response for a random pick
type RandomSpellOutput struct {
	Spell *grimoire.Spell
}

// ReloadInput defines the request for rebuilding the index
type ReloadInput struct{}

// ReloadOutput defines the response for rebuilding the index
type ReloadOutput struct {
	Count    int
	Version  string
	LoadedAt time.Time
	Source   string
}

// StatsInput defines the request for index statistics
type StatsInput struct{}

// StatsOutput defines the response for index statistics
type StatsOutput struct {
	Count     int
	ByElement map[string]int
	Version   string
	LoadedAt  time.Time
	Source    string
}
