package transfer

import (
	"math/big"

	"github.com/ipfs/go-cid"

	"xdao.co/tokenbridge/message"
)

// Outbound is a constructed transfer message ready to be published.
type Outbound struct {
	Nonce   uint32
	Message message.TransferWithPayload

	Encoded []byte
	Digest  [32]byte
	CID     cid.Cid

	// Dust is the part of the requested amount, in the mint's own units, that
	// is not bridged because it falls below the bridge's 8-decimal precision.
	Dust uint64
}

func newOutbound(nonce uint32, msg message.TransferWithPayload, dust uint64) (*Outbound, error) {
	b, err := msg.Encode()
	if err != nil {
		return nil, err
	}
	id, err := message.CID(b)
	if err != nil {
		return nil, err
	}
	return &Outbound{
		Nonce:   nonce,
		Message: msg,
		Encoded: b,
		Digest:  message.Digest(b),
		CID:     id,
		Dust:    dust,
	}, nil
}

func validate(args Args, local message.ChainID) error {
	if args.RedeemerChain == message.ChainUnset || args.RedeemerChain == local {
		return ErrInvalidRedeemerChain
	}
	return nil
}

func bigAmount(v uint64) *big.Int { return new(big.Int).SetUint64(v) }
