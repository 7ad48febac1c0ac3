package transfer

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
	"xdao.co/tokenbridge/signer"
)

// MaxDecimals is the precision amounts are normalized to on the wire.
const MaxDecimals = 8

// NativeAsset is a mint that originates on the local chain; tokens are
// escrowed by the bridge.
type NativeAsset struct {
	Mint     solana.PublicKey
	Decimals uint8
}

// Native handles transfer_tokens_with_payload_native.
type Native struct {
	Resolver *sender.Resolver
	// Chain is the local chain id; ChainUnset means Solana.
	Chain message.ChainID
}

// Transfer resolves the sender and builds the outbound message.
func (h *Native) Transfer(s signer.Signer, asset NativeAsset, args Args) (*Outbound, error) {
	local := localChain(h.Chain)
	from, err := h.Resolver.Resolve(s.Key(), args.Origin())
	if err != nil {
		return nil, err
	}
	if err := validate(args, local); err != nil {
		return nil, err
	}

	amount, dust, err := normalize(args.Amount, asset.Decimals)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}

	return newOutbound(args.Nonce, message.TransferWithPayload{
		Amount:       bigAmount(amount),
		TokenAddress: message.ExternalAddressFromPublicKey(asset.Mint),
		TokenChain:   local,
		To:           args.Redeemer,
		ToChain:      args.RedeemerChain,
		FromAddress:  from,
		Payload:      args.Payload,
	}, dust)
}

// normalize truncates amount to MaxDecimals of precision and returns the
// normalized amount with the dust left behind.
func normalize(amount uint64, decimals uint8) (uint64, uint64, error) {
	if decimals <= MaxDecimals {
		return amount, 0, nil
	}
	shift := decimals - MaxDecimals
	if shift > 19 {
		return 0, 0, fmt.Errorf("%w: %d", ErrDecimals, decimals)
	}
	div := uint64(1)
	for i := uint8(0); i < shift; i++ {
		div *= 10
	}
	return amount / div, amount % div, nil
}

func localChain(c message.ChainID) message.ChainID {
	if c == message.ChainUnset {
		return message.ChainSolana
	}
	return c
}
