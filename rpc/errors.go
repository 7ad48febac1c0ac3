package rpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/tokenbridge/sender"
)

var (
	ErrInvalidRequest = errors.New("rpc: malformed sender resolver request")
	ErrInvalidReply   = errors.New("rpc: malformed sender resolver reply")
)

// remoteAuthorizationError reports a program identity claim the server
// rejected, so sender.IsAuthorization holds on the client side too.
func remoteAuthorizationError(msg string) error {
	return &sender.Error{Kind: sender.KindAuthorization, RuleID: sender.RuleAuthorization, Message: msg}
}

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.PermissionDenied:
		return remoteAuthorizationError(st.Message())
	case codes.InvalidArgument:
		return ErrInvalidRequest
	default:
		return err
	}
}
