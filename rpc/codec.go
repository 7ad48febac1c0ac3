package rpc

import (
	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/sender"
)

func encodeResolveRequest(caller solana.PublicKey, origin sender.CallOrigin) ([]byte, error) {
	out := make([]byte, 0, 2*solana.PublicKeyLength)
	out = append(out, caller[:]...)
	switch o := origin.(type) {
	case sender.Direct:
	case sender.Relayed:
		out = append(out, o.Program[:]...)
	default:
		return nil, ErrInvalidRequest
	}
	return out, nil
}

func decodeResolveRequest(b []byte) (solana.PublicKey, sender.CallOrigin, error) {
	switch len(b) {
	case solana.PublicKeyLength:
		return solana.PublicKeyFromBytes(b), sender.Direct{}, nil
	case 2 * solana.PublicKeyLength:
		return solana.PublicKeyFromBytes(b[:solana.PublicKeyLength]),
			sender.Relayed{Program: solana.PublicKeyFromBytes(b[solana.PublicKeyLength:])}, nil
	default:
		return solana.PublicKey{}, nil, ErrInvalidRequest
	}
}
