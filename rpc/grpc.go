package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// SenderResolverServer is the server API for the SenderResolver gRPC service.
//
// Requests and replies are protobuf well-known wrapper types, so no
// protoc/codegen toolchain is needed:
//
//	Resolve: BytesValue(caller[32] || program[32]?) -> BytesValue(external_address[32])
//	Derive:  BytesValue(program[32])                -> BytesValue(authority[32] || bump)
type SenderResolverServer interface {
	Resolve(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Derive(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedSenderResolverServer can be embedded to have forward compatible implementations.
type UnimplementedSenderResolverServer struct{}

func (UnimplementedSenderResolverServer) Resolve(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedSenderResolverServer) Derive(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Derive not implemented")
}

// RegisterSenderResolverServer registers the SenderResolver service on a gRPC server.
func RegisterSenderResolverServer(s grpc.ServiceRegistrar, srv SenderResolverServer) {
	s.RegisterService(&SenderResolver_ServiceDesc, srv)
}

// SenderResolverClient is the client API for the SenderResolver gRPC service.
type SenderResolverClient interface {
	Resolve(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Derive(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type senderResolverClient struct{ cc grpc.ClientConnInterface }

func NewSenderResolverClient(cc grpc.ClientConnInterface) SenderResolverClient {
	return &senderResolverClient{cc: cc}
}

const (
	serviceName       = "xdao.tokenbridge.sender.v1.SenderResolver"
	resolveFullMethod = "/" + serviceName + "/Resolve"
	deriveFullMethod  = "/" + serviceName + "/Derive"
)

func (c *senderResolverClient) Resolve(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, resolveFullMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *senderResolverClient) Derive(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, deriveFullMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _SenderResolver_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SenderResolverServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: resolveFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SenderResolverServer).Resolve(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _SenderResolver_Derive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SenderResolverServer).Derive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deriveFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SenderResolverServer).Derive(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// SenderResolver_ServiceDesc is the grpc.ServiceDesc for SenderResolver service.
var SenderResolver_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SenderResolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: _SenderResolver_Resolve_Handler},
		{MethodName: "Derive", Handler: _SenderResolver_Derive_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sender.proto",
}
