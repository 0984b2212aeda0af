package spellbook

import (
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

// Index is an immutable snapshot of a loaded dataset. It is built in full
// before publication and never mutated afterwards.
type Index struct {
	spells   []*grimoire.Spell
	byName   map[string]*grimoire.Spell
	keys     []searchKeys
	version  string
	loadedAt time.Time
	source   string
}

// searchKeys are the folded forms of a spell, computed once per load
type searchKeys struct {
	name         string
	element      string
	elementFirst string
	categories   []string
	text         string
}

// IndexMeta describes where an index came from
type IndexMeta struct {
	Version  string
	LoadedAt time.Time
	Source   string
}

// NewIndex builds an index over a normalized dataset
func NewIndex(result *normalizer.Result, meta IndexMeta) *Index {
	idx := &Index{
		byName:   make(map[string]*grimoire.Spell),
		version:  meta.Version,
		loadedAt: meta.LoadedAt,
		source:   meta.Source,
	}
	if result == nil {
		return idx
	}

	idx.spells = result.Spells
	idx.keys = make([]searchKeys, len(result.Spells))
	for i, spell := range result.Spells {
		idx.keys[i] = keysFor(spell)
	}
	for name, spell := range result.ByName {
		idx.byName[name] = spell
	}

	return idx
}

func keysFor(spell *grimoire.Spell) searchKeys {
	k := searchKeys{
		name:       normalizer.Fold(spell.Name),
		element:    normalizer.Fold(spell.Element),
		categories: make([]string, 0, len(spell.Categories)),
	}
	if fields := strings.Fields(k.element); len(fields) > 0 {
		k.elementFirst = fields[0]
	}
	for _, c := range spell.Categories {
		k.categories = append(k.categories, normalizer.Fold(c))
	}

	parts := []string{spell.Description, spell.Effect, spell.Cost, spell.Cooldown, spell.Duration}
	parts = append(parts, spell.Limitations...)
	k.text = normalizer.Fold(strings.Join(parts, " "))

	return k
}

// Len returns the number of spells
func (idx *Index) Len() int {
	return len(idx.spells)
}

// Version identifies the load that produced the index
func (idx *Index) Version() string {
	return idx.version
}

// LoadedAt returns when the index was built
func (idx *Index) LoadedAt() time.Time {
	return idx.loadedAt
}

// Source describes the dataset the index was built from
func (idx *Index) Source() string {
	return idx.source
}

// lookup returns the first spell whose folded name equals the folded query
func (idx *Index) lookup(folded string) (*grimoire.Spell, bool) {
	spell, ok := idx.byName[folded]
	return spell, ok
}

func (k *searchKeys) hasElement(token string) bool {
	return k.element == token || k.elementFirst == token
}

func (k *searchKeys) categoryContains(term string) bool {
	for _, c := range k.categories {
		if strings.Contains(c, term) {
			return true
		}
	}
	return false
}

// filter returns matching spells sorted by folded name, ties by raw name
func (idx *Index) filter(match func(k *searchKeys) bool) []*grimoire.Spell {
	type hit struct {
		spell *grimoire.Spell
		name  string
	}

	hits := make([]hit, 0)
	for i := range idx.spells {
		if match(&idx.keys[i]) {
			hits = append(hits, hit{spell: idx.spells[i], name: idx.keys[i].name})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].name != hits[b].name {
			return hits[a].name < hits[b].name
		}
		return hits[a].spell.Name < hits[b].spell.Name
	})

	out := make([]*grimoire.Spell, len(hits))
	for i, h := range hits {
		out[i] = h.spell
	}
	return out
}
