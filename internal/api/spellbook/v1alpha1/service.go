package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "grimoire.v1alpha1.SpellbookService"

// Full method names
const (
	SpellbookService_GetSpell_FullMethodName        = "/" + ServiceName + "/GetSpell"
	SpellbookService_SuggestSpells_FullMethodName   = "/" + ServiceName + "/SuggestSpells"
	SpellbookService_SearchSpells_FullMethodName    = "/" + ServiceName + "/SearchSpells"
	SpellbookService_ListSpells_FullMethodName      = "/" + ServiceName + "/ListSpells"
	SpellbookService_RandomSpell_FullMethodName     = "/" + ServiceName + "/RandomSpell"
	SpellbookService_ReloadSpellbook_FullMethodName = "/" + ServiceName + "/ReloadSpellbook"
	SpellbookService_GetStats_FullMethodName        = "/" + ServiceName + "/GetStats"
)

// SpellbookServiceServer is the server API for SpellbookService
type SpellbookServiceServer interface {
	GetSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SuggestSpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchSpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RandomSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReloadSpellbook(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedSpellbookServiceServer can be embedded to have forward compatible implementations
type UnimplementedSpellbookServiceServer struct{}

func (UnimplementedSpellbookServiceServer) GetSpell(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSpell not implemented")
}

func (UnimplementedSpellbookServiceServer) SuggestSpells(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SuggestSpells not implemented")
}

func (UnimplementedSpellbookServiceServer) SearchSpells(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchSpells not implemented")
}

func (UnimplementedSpellbookServiceServer) ListSpells(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpells not implemented")
}

func (UnimplementedSpellbookServiceServer) RandomSpell(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RandomSpell not implemented")
}

func (UnimplementedSpellbookServiceServer) ReloadSpellbook(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ReloadSpellbook not implemented")
}

func (UnimplementedSpellbookServiceServer) GetStats(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

// RegisterSpellbookServiceServer registers srv on s
func RegisterSpellbookServiceServer(s grpc.ServiceRegistrar, srv SpellbookServiceServer) {
	s.RegisterService(&SpellbookService_ServiceDesc, srv)
}

type unaryMethod func(SpellbookServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a server method to grpc's handler signature
func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SpellbookServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SpellbookServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SpellbookService_ServiceDesc is the grpc.ServiceDesc for SpellbookService
var SpellbookService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SpellbookServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSpell",
			Handler:    unaryHandler(SpellbookService_GetSpell_FullMethodName, SpellbookServiceServer.GetSpell),
		},
		{
			MethodName: "SuggestSpells",
			Handler:    unaryHandler(SpellbookService_SuggestSpells_FullMethodName, SpellbookServiceServer.SuggestSpells),
		},
		{
			MethodName: "SearchSpells",
			Handler:    unaryHandler(SpellbookService_SearchSpells_FullMethodName, SpellbookServiceServer.SearchSpells),
		},
		{
			MethodName: "ListSpells",
			Handler:    unaryHandler(SpellbookService_ListSpells_FullMethodName, SpellbookServiceServer.ListSpells),
		},
		{
			MethodName: "RandomSpell",
			Handler:    unaryHandler(SpellbookService_RandomSpell_FullMethodName, SpellbookServiceServer.RandomSpell),
		},
		{
			MethodName: "ReloadSpellbook",
			Handler:    unaryHandler(SpellbookService_ReloadSpellbook_FullMethodName, SpellbookServiceServer.ReloadSpellbook),
		},
		{
			MethodName: "GetStats",
			Handler:    unaryHandler(SpellbookService_GetStats_FullMethodName, SpellbookServiceServer.GetStats),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "grimoire/v1alpha1/spellbook.proto",
}
