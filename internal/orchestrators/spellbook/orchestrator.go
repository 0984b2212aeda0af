// Package spellbook implements the spell query engine over an atomically
// swapped in-memory index
package spellbook

//go:generate mockgen -destination=mock/mock_service.go -package=spellbookmock github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook Service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/clock"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/idgen"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

const (
	// MaxSuggestions is the most names a suggestion list may hold
	MaxSuggestions = 25
)

// listAllTokens make ListSpells return every spell
var listAllTokens = map[string]bool{
	"all":   true,
	"todas": true,
	"todos": true,
	"tudo":  true,
}

// Service defines the interface for spellbook queries
type Service interface {
	// Lookups against the current index
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	SuggestSpells(ctx context.Context, input *SuggestSpellsInput) (*SuggestSpellsOutput, error)
	SearchSpells(ctx context.Context, input *SearchSpellsInput) (*SearchSpellsOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	RandomSpell(ctx context.Context, input *RandomSpellInput) (*RandomSpellOutput, error)

	// Index management
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)
}

// Config holds the dependencies for the spellbook orchestrator
type Config struct {
	Repository  dataset.Repository
	Normalizer  normalizer.Normalizer
	Roller      dice.Roller
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repository dataset.Repository
	normalizer normalizer.Normalizer
	roller     dice.Roller
	clock      clock.Clock
	idGen      idgen.Generator

	index    atomic.Pointer[Index]
	reloadMu sync.Mutex
}

// NewOrchestrator creates a spellbook orchestrator serving an empty index
// until the first Reload
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repository: cfg.Repository,
		normalizer: cfg.Normalizer,
		roller:     cfg.Roller,
		clock:      cfg.Clock,
		idGen:      cfg.IDGenerator,
	}
	o.index.Store(NewIndex(nil, IndexMeta{}))

	return o, nil
}

func (o *orchestrator) current() *Index {
	return o.index.Load()
}

// GetSpell returns the first spell, in load order, whose name matches ignoring
// case, accents and punctuation
func (o *orchestrator) GetSpell(_ context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query := normalizer.Fold(input.Name)
	if query == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	spell, ok := o.current().lookup(query)
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", input.Name).WithMeta("name", input.Name)
	}

	return &GetSpellOutput{Spell: spell}, nil
}

// SuggestSpells returns names containing the query, in load order
func (o *orchestrator) SuggestSpells(_ context.Context, input *SuggestSpellsInput) (*SuggestSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	if limit <= 0 || limit > MaxSuggestions {
		limit = MaxSuggestions
	}

	query := normalizer.Fold(input.Query)
	idx := o.current()

	names := make([]string, 0, limit)
	for i, spell := range idx.spells {
		if len(names) == limit {
			break
		}
		if strings.Contains(idx.keys[i].name, query) {
			names = append(names, spell.Name)
		}
	}

	return &SuggestSpellsOutput{Names: names}, nil
}

// SearchSpells matches the term against names, categories and full text. A
// term naming an element only matches on element, category and name.
func (o *orchestrator) SearchSpells(_ context.Context, input *SearchSpellsInput) (*SearchSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	term := normalizer.Fold(input.Term)
	idx := o.current()

	if grimoire.IsKnownElement(term) {
		return &SearchSpellsOutput{
			Spells: idx.filter(func(k *searchKeys) bool {
				return k.hasElement(term) || k.categoryContains(term) || strings.Contains(k.name, term)
			}),
			ElementScoped: true,
		}, nil
	}

	return &SearchSpellsOutput{
		Spells: idx.filter(func(k *searchKeys) bool {
			return strings.Contains(k.name, term) || k.categoryContains(term) || strings.Contains(k.text, term)
		}),
	}, nil
}

// ListSpells returns spells of an element or category, or all of them for the
// all/todas/todos/tudo tokens
func (o *orchestrator) ListSpells(_ context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	filter := normalizer.Fold(input.Filter)
	idx := o.current()

	if filter == "" || listAllTokens[filter] {
		return &ListSpellsOutput{
			Spells: idx.filter(func(*searchKeys) bool { return true }),
		}, nil
	}

	return &ListSpellsOutput{
		Spells: idx.filter(func(k *searchKeys) bool {
			return k.hasElement(filter) || k.categoryContains(filter)
		}),
	}, nil
}

// RandomSpell picks a spell uniformly with the configured roller
func (o *orchestrator) RandomSpell(_ context.Context, input *RandomSpellInput) (*RandomSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	idx := o.current()
	if idx.Len() == 0 {
		return nil, errors.NotFound("spellbook is empty")
	}

	roll, err := o.roller.Roll(idx.Len())
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll for a random spell")
	}
	if roll < 1 || roll > idx.Len() {
		return nil, errors.Internalf("roller returned %d for a d%d", roll, idx.Len())
	}

	return &RandomSpellOutput{Spell: idx.spells[roll-1]}, nil
}

// Reload rebuilds the index from the repository and swaps it in. The live
// index is untouched when loading fails.
func (o *orchestrator) Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.reloadMu.Lock()
	defer o.reloadMu.Unlock()

	loaded, err := o.repository.Load(ctx, dataset.LoadInput{})
	if err != nil {
		log.Error().Err(err).Msg("spellbook reload failed, keeping current index")
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	result := o.normalizer.NormalizeAll(loaded.Input)
	idx := NewIndex(result, IndexMeta{
		Version:  o.idGen.Generate(),
		LoadedAt: o.clock.Now(),
		Source:   loaded.Source,
	})
	o.index.Store(idx)

	log.Info().
		Int("spells", idx.Len()).
		Int("raw_records", loaded.Input.Len()).
		Str("version", idx.Version()).
		Str("source", idx.Source()).
		Msg("spellbook loaded")

	return &ReloadOutput{
		Count:    idx.Len(),
		Version:  idx.Version(),
		LoadedAt: idx.LoadedAt(),
		Source:   idx.Source(),
	}, nil
}

// Stats summarizes the current index
func (o *orchestrator) Stats(_ context.Context, input *StatsInput) (*StatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	idx := o.current()
	byElement := make(map[string]int)
	for _, spell := range idx.spells {
		byElement[spell.Element]++
	}

	return &StatsOutput{
		Count:     idx.Len(),
		ByElement: byElement,
		Version:   idx.Version(),
		LoadedAt:  idx.LoadedAt(),
		Source:    idx.Source(),
	}, nil
}
