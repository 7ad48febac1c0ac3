package sender

import "github.com/gagliardetto/solana-go"

// CallOrigin describes how a transfer request reached the token bridge.
// It is either Direct or Relayed.
type CallOrigin interface {
	isCallOrigin()
}

// Direct is a request issued by the key holder itself.
type Direct struct{}

// Relayed is a request issued by Program through a cross-program invocation.
type Relayed struct {
	Program solana.PublicKey
}

func (Direct) isCallOrigin()  {}
func (Relayed) isCallOrigin() {}

// OriginFor maps an optional invoking program to a CallOrigin.
func OriginFor(program *solana.PublicKey) CallOrigin {
	if program == nil {
		return Direct{}
	}
	return Relayed{Program: *program}
}
