package rpc

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/tokenbridge/sender"
)

// Server exposes a sender.Resolver over the SenderResolver gRPC service.
type Server struct {
	UnimplementedSenderResolverServer
	Resolver *sender.Resolver
}

func (s *Server) Resolve(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	caller, origin, err := decodeResolveRequest(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	var r *sender.Resolver
	if s != nil {
		r = s.Resolver
	}
	addr, err := r.Resolve(caller, origin)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(addr.Bytes()), nil
}

func (s *Server) Derive(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	b := in.GetValue()
	if len(b) != solana.PublicKeyLength {
		return nil, status.Error(codes.InvalidArgument, ErrInvalidRequest.Error())
	}
	var d sender.AddressDeriver
	if s != nil && s.Resolver != nil {
		d = s.Resolver.Deriver
	}
	authority, bump, err := sender.SenderAuthority(d, solana.PublicKeyFromBytes(b))
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]byte, 0, solana.PublicKeyLength+1)
	out = append(out, authority[:]...)
	out = append(out, bump)
	return wrapperspb.Bytes(out), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case sender.IsKind(err, sender.KindAuthorization):
		return status.Error(codes.PermissionDenied, err.Error())
	case sender.IsKind(err, sender.KindOrigin):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
