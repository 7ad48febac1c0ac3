package rpc

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
)

// Client resolves sender addresses through a SenderResolver gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client SenderResolverClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an established connection. Close closes cc.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewSenderResolverClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Resolve resolves remotely. Rejected program claims satisfy sender.IsAuthorization.
func (c *Client) Resolve(ctx context.Context, caller solana.PublicKey, origin sender.CallOrigin) (message.ExternalAddress, error) {
	var out message.ExternalAddress
	req, err := encodeResolveRequest(caller, origin)
	if err != nil {
		return out, err
	}

	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.Resolve(ctx, wrapperspb.Bytes(req))
	if err != nil {
		return out, mapRPC(err)
	}
	b := reply.GetValue()
	if len(b) != message.ExternalAddressLength {
		return out, ErrInvalidReply
	}
	copy(out[:], b)
	return out, nil
}

// Derive returns the sender authority of program and its bump.
func (c *Client) Derive(ctx context.Context, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.Derive(ctx, wrapperspb.Bytes(program.Bytes()))
	if err != nil {
		return solana.PublicKey{}, 0, mapRPC(err)
	}
	b := reply.GetValue()
	if len(b) != solana.PublicKeyLength+1 {
		return solana.PublicKey{}, 0, ErrInvalidReply
	}
	return solana.PublicKeyFromBytes(b[:solana.PublicKeyLength]), b[solana.PublicKeyLength], nil
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}
