// Package v1alpha1 handles the grimoire.v1alpha1.SpellbookService grpc interface
package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	apiv1alpha1 "github.com/KirkDiggler/grimoire-api/internal/api/spellbook/v1alpha1"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/card"
	"github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook"
)

// HandlerConfig holds dependencies for the spellbook handler
type HandlerConfig struct {
	SpellbookService spellbook.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SpellbookService == nil {
		return errors.InvalidArgument("spellbook service is required")
	}
	return nil
}

// Handler implements the spellbook gRPC service
type Handler struct {
	apiv1alpha1.UnimplementedSpellbookServiceServer
	spellbookService spellbook.Service
}

var _ apiv1alpha1.SpellbookServiceServer = (*Handler)(nil)

// NewHandler creates a new spellbook handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		spellbookService: cfg.SpellbookService,
	}, nil
}

// GetSpell returns the spell whose folded name equals the requested name
func (h *Handler) GetSpell(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req apiv1alpha1.GetSpellRequest
	if err := apiv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.spellbookService.GetSpell(ctx, &spellbook.GetSpellInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(apiv1alpha1.NewSpellResponse(out.Spell))
}

// SuggestSpells returns autocomplete names. An empty query is allowed.
func (h *Handler) SuggestSpells(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req apiv1alpha1.SuggestSpellsRequest
	if err := apiv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.spellbookService.SuggestSpells(ctx, &spellbook.SuggestSpellsInput{
		Query: req.Query,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&apiv1alpha1.SuggestSpellsResponse{
		Names:   out.Names,
		Choices: card.Choices(out.Names),
	})
}

// SearchSpells runs a free text search
func (h *Handler) SearchSpells(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req apiv1alpha1.SearchSpellsRequest
	if err := apiv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(req.Term) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("term is required"))
	}

	out, err := h.spellbookService.SearchSpells(ctx, &spellbook.SearchSpellsInput{Term: req.Term})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := apiv1alpha1.NewSpellListResponse(out.Spells)
	resp.ElementScoped = out.ElementScoped
	return respond(resp)
}

// ListSpells runs a filtered listing
func (h *Handler) ListSpells(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req apiv1alpha1.ListSpellsRequest
	if err := apiv1alpha1.Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(req.Filter) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("filter is required"))
	}

	out, err := h.spellbookService.ListSpells(ctx, &spellbook.ListSpellsInput{Filter: req.Filter})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(apiv1alpha1.NewSpellListResponse(out.Spells))
}

// RandomSpell picks one spell uniformly
func (h *Handler) RandomSpell(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.spellbookService.RandomSpell(ctx, &spellbook.RandomSpellInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(apiv1alpha1.NewSpellResponse(out.Spell))
}

// ReloadSpellbook rebuilds the index from the configured dataset
func (h *Handler) ReloadSpellbook(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.spellbookService.Reload(ctx, &spellbook.ReloadInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&apiv1alpha1.ReloadSpellbookResponse{
		Count:    out.Count,
		Version:  out.Version,
		LoadedAt: out.LoadedAt,
		Source:   out.Source,
	})
}

// GetStats describes the live index
func (h *Handler) GetStats(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.spellbookService.Stats(ctx, &spellbook.StatsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&apiv1alpha1.GetStatsResponse{
		Count:     out.Count,
		ByElement: out.ByElement,
		Version:   out.Version,
		LoadedAt:  out.LoadedAt,
		Source:    out.Source,
	})
}

func respond(msg any) (*structpb.Struct, error) {
	out, err := apiv1alpha1.Encode(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
