package transfer

import (
	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
	"xdao.co/tokenbridge/signer"
)

// WrappedAsset is a bridge-minted representation of a foreign token; tokens
// are burned on transfer.
type WrappedAsset struct {
	TokenChain   message.ChainID
	TokenAddress message.ExternalAddress
	Decimals     uint8
}

// Wrapped handles transfer_tokens_with_payload_wrapped.
type Wrapped struct {
	Resolver *sender.Resolver
	// Chain is the local chain id; ChainUnset means Solana.
	Chain message.ChainID
}

// Transfer resolves the sender and builds the outbound message.
func (h *Wrapped) Transfer(s signer.Signer, asset WrappedAsset, args Args) (*Outbound, error) {
	local := localChain(h.Chain)
	from, err := h.Resolver.Resolve(s.Key(), args.Origin())
	if err != nil {
		return nil, err
	}
	if err := validate(args, local); err != nil {
		return nil, err
	}
	if asset.TokenChain == local || asset.TokenChain == message.ChainUnset {
		return nil, ErrNativeWrappedAsset
	}
	if asset.Decimals > MaxDecimals {
		return nil, ErrDecimals
	}
	if args.Amount == 0 {
		return nil, ErrZeroAmount
	}

	return newOutbound(args.Nonce, message.TransferWithPayload{
		Amount:       bigAmount(args.Amount),
		TokenAddress: asset.TokenAddress,
		TokenChain:   asset.TokenChain,
		To:           args.Redeemer,
		ToChain:      args.RedeemerChain,
		FromAddress:  from,
		Payload:      args.Payload,
	}, 0)
}
