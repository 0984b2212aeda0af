// Package external imports spells from the D&D 5e SRD API as raw dataset records
package external

//go:generate mockgen -destination=mock/mock_importer.go -package=externalmock github.com/KirkDiggler/grimoire-api/internal/clients/external Importer

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

const (
	// DefaultBaseURL is the public SRD API
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"
	// DefaultWorkers bounds concurrent spell detail requests
	DefaultWorkers = 8
)

// D&D 5e class names accepted as a list filter
var dnd5eClassNames = map[string]string{
	"bard":     "bard",
	"cleric":   "cleric",
	"druid":    "druid",
	"paladin":  "paladin",
	"ranger":   "ranger",
	"sorcerer": "sorcerer",
	"warlock":  "warlock",
	"wizard":   "wizard",
}

// Importer converts SRD spells into records the normalizer understands
type Importer interface {
	// ImportSpells lists matching SRD spells and loads their details concurrently
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error)
}

// ImportSpellsInput filters the SRD listing
type ImportSpellsInput struct {
	// Level restricts to one spell level (0 is cantrips)
	Level *int
	// Class restricts to one class's spell list
	Class string
	// GroupByElement emits element blocks instead of a flat record list
	GroupByElement bool
}

// ImportSpellsOutput holds the imported dataset
type ImportSpellsOutput struct {
	Input *grimoire.RawInput
}

// spellSource is the part of dnd5e.Interface the importer needs
type spellSource interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

// Config contains configuration options for the importer.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Workers bounds concurrent detail requests (optional, defaults to DefaultWorkers)
	Workers int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("httpTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("cacheTTL", "must not be negative")
	}
	if cfg.Workers < 0 {
		vb.Field("workers", "must not be negative")
	}
	return vb.Build()
}

type importer struct {
	source  spellSource
	workers int
}

// New creates an importer backed by a cached dnd5e-api client.
func New(cfg *Config) (Importer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create D&D 5e API client")
	}

	return newImporter(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL), cfg.Workers), nil
}

func newImporter(source spellSource, workers int) *importer {
	if workers < 1 {
		workers = 1
	}
	return &importer{source: source, workers: workers}
}

func (i *importer) ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error) {
	if input == nil {
		input = &ImportSpellsInput{}
	}

	listInput := &dnd5e.ListSpellsInput{Level: input.Level}
	if input.Class != "" {
		className, ok := dnd5eClassNames[input.Class]
		if !ok {
			return nil, errors.InvalidArgumentf("unknown class %q", input.Class).
				WithMeta("class", input.Class)
		}
		listInput.Class = className
	}

	log.Info().Str("class", listInput.Class).Msg("Calling D&D 5e API to list spells")
	refs, err := i.source.ListSpells(listInput)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells from D&D 5e API")
	}
	log.Info().Int("count", len(refs)).Msg("Got spell references")

	records := make([]grimoire.RawRecord, len(refs))
	errChan := make(chan error, len(refs))
	sem := make(chan struct{}, i.workers)
	var wg sync.WaitGroup

	for idx, ref := range refs {
		if ref == nil {
			continue
		}

		wg.Add(1)
		go func(idx int, key, name string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			spell, err := i.source.GetSpell(key)
			if err != nil {
				log.Error().Err(err).Str("spell", key).Msg("Failed to get spell details")
				errChan <- errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s", key).
					WithMeta("spell", key)
				return
			}
			if spell == nil {
				errChan <- errors.DataLossf("spell %s returned no details", key).WithMeta("spell", key)
				return
			}

			records[idx] = spellToRecord(spell)
			log.Debug().Str("spell", name).Msg("Loaded spell details")
		}(idx, ref.Key, ref.Name)
	}

	wg.Wait()
	close(errChan)

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ContextCode(err), "spell import canceled")
	}

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	loaded := make([]grimoire.RawRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			loaded = append(loaded, rec)
		}
	}

	if input.GroupByElement {
		return &ImportSpellsOutput{Input: &grimoire.RawInput{Groups: groupByElement(loaded)}}, nil
	}
	return &ImportSpellsOutput{Input: &grimoire.RawInput{Records: loaded}}, nil
}
