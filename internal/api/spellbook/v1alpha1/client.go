package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Client is a typed SpellbookService client. Errors come back as *errors.Error.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}
	return Decode(out, resp)
}

// GetSpell looks up one spell by name
func (c *Client) GetSpell(ctx context.Context, req *GetSpellRequest, opts ...grpc.CallOption) (*SpellResponse, error) {
	resp := &SpellResponse{}
	if err := c.invoke(ctx, SpellbookService_GetSpell_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// SuggestSpells returns autocomplete names
func (c *Client) SuggestSpells(ctx context.Context, req *SuggestSpellsRequest, opts ...grpc.CallOption) (*SuggestSpellsResponse, error) {
	resp := &SuggestSpellsResponse{}
	if err := c.invoke(ctx, SpellbookService_SuggestSpells_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// SearchSpells runs a free text search
func (c *Client) SearchSpells(ctx context.Context, req *SearchSpellsRequest, opts ...grpc.CallOption) (*SpellListResponse, error) {
	resp := &SpellListResponse{}
	if err := c.invoke(ctx, SpellbookService_SearchSpells_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSpells runs a filtered listing
func (c *Client) ListSpells(ctx context.Context, req *ListSpellsRequest, opts ...grpc.CallOption) (*SpellListResponse, error) {
	resp := &SpellListResponse{}
	if err := c.invoke(ctx, SpellbookService_ListSpells_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// RandomSpell picks one spell
func (c *Client) RandomSpell(ctx context.Context, req *RandomSpellRequest, opts ...grpc.CallOption) (*SpellResponse, error) {
	resp := &SpellResponse{}
	if err := c.invoke(ctx, SpellbookService_RandomSpell_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ReloadSpellbook rebuilds the server's index
func (c *Client) ReloadSpellbook(ctx context.Context, req *ReloadSpellbookRequest, opts ...grpc.CallOption) (*ReloadSpellbookResponse, error) {
	resp := &ReloadSpellbookResponse{}
	if err := c.invoke(ctx, SpellbookService_ReloadSpellbook_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStats describes the server's index
func (c *Client) GetStats(ctx context.Context, req *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	resp := &GetStatsResponse{}
	if err := c.invoke(ctx, SpellbookService_GetStats_FullMethodName, req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}
