package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service speaks well known types only, so no generated package is
// needed. Requests and replies are JSON shaped structpb.Struct values.
const (
	ServiceName = "rfhub.RFHub"

	MethodResolveCode = "/rfhub.RFHub/ResolveCode"
	MethodListCards   = "/rfhub.RFHub/ListCards"
	MethodSetArmed    = "/rfhub.RFHub/SetArmed"
	MethodIngestCode  = "/rfhub.RFHub/IngestCode"
)

type RFHubServer interface {
	ResolveCode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCards(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SetArmed(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IngestCode(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

func RegisterRFHubServer(s grpc.ServiceRegistrar, srv RFHubServer) {
	s.RegisterService(&RFHubServiceDesc, srv)
}

var RFHubServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RFHubServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ResolveCode", Handler: unaryHandler(MethodResolveCode, RFHubServer.ResolveCode)},
		{MethodName: "ListCards", Handler: unaryHandler(MethodListCards, RFHubServer.ListCards)},
		{MethodName: "SetArmed", Handler: unaryHandler(MethodSetArmed, RFHubServer.SetArmed)},
		{MethodName: "IngestCode", Handler: unaryHandler(MethodIngestCode, RFHubServer.IngestCode)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rfhub.proto",
}

// unaryHandler builds the method handler protoc-gen-go-grpc would emit for
// one method.
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(RFHubServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RFHubServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RFHubServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type RFHubClient struct {
	cc grpc.ClientConnInterface
}

func NewRFHubClient(cc grpc.ClientConnInterface) *RFHubClient {
	return &RFHubClient{cc: cc}
}

func (c *RFHubClient) ResolveCode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodResolveCode, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RFHubClient) ListCards(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodListCards, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RFHubClient) SetArmed(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodSetArmed, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RFHubClient) IngestCode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, MethodIngestCode, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
