// Package v1alpha1 defines the grimoire.v1alpha1.SpellbookService wire contract.
// Messages travel as google.protobuf.Struct so no generated code is required.
package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/card"
)

// GetSpellRequest looks up one spell by name
type GetSpellRequest struct {
	Name string `json:"name"`
}

// SpellResponse carries a single spell and its card view
type SpellResponse struct {
	Spell *grimoire.Spell `json:"spell"`
	Card  *card.Card      `json:"card"`
}

// SuggestSpellsRequest asks for autocomplete names
type SuggestSpellsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SuggestSpellsResponse holds autocomplete names and their display choices
type SuggestSpellsResponse struct {
	Names   []string      `json:"names"`
	Choices []card.Choice `json:"choices"`
}

// SearchSpellsRequest is a free text search
type SearchSpellsRequest struct {
	Term string `json:"term"`
}

// ListSpellsRequest is a filtered listing
type ListSpellsRequest struct {
	Filter string `json:"filter"`
}

// SpellListResponse is shared by search and list
type SpellListResponse struct {
	Spells        []*grimoire.Spell `json:"spells"`
	Total         int               `json:"total"`
	Listing       string            `json:"listing"`
	ElementScoped bool              `json:"element_scoped,omitempty"`
}

// RandomSpellRequest picks one spell
type RandomSpellRequest struct{}

// ReloadSpellbookRequest rebuilds the index from the dataset
type ReloadSpellbookRequest struct{}

// ReloadSpellbookResponse describes the freshly built index
type ReloadSpellbookResponse struct {
	Count    int       `json:"count"`
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
	Source   string    `json:"source"`
}

// GetStatsRequest asks for index statistics
type GetStatsRequest struct{}

// GetStatsResponse describes the live index
type GetStatsResponse struct {
	Count     int            `json:"count"`
	ByElement map[string]int `json:"by_element"`
	Version   string         `json:"version"`
	LoadedAt  time.Time      `json:"loaded_at"`
	Source    string         `json:"source"`
}

// Encode converts a message into its Struct wire form
func Encode(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode message")
	}
	return out, nil
}

// Decode fills msg from its Struct wire form. A nil Struct leaves msg untouched.
func Decode(in *structpb.Struct, msg any) error {
	if in == nil {
		return nil
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode message")
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode message")
	}
	return nil
}

// NewSpellResponse pairs a spell with its card view
func NewSpellResponse(spell *grimoire.Spell) *SpellResponse {
	return &SpellResponse{
		Spell: spell,
		Card:  card.FromSpell(spell),
	}
}

// NewSpellListResponse builds the listing for a sorted result set
func NewSpellListResponse(spells []*grimoire.Spell) *SpellListResponse {
	return &SpellListResponse{
		Spells:  spells,
		Total:   len(spells),
		Listing: card.ResultList(card.Names(spells)),
	}
}
