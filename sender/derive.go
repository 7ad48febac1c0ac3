package sender

import "github.com/gagliardetto/solana-go"

// SenderSeed is the seed a program uses to derive its sender authority.
var SenderSeed = []byte("sender")

// AddressDeriver derives a program address from seeds. Implementations must be
// deterministic and must only return addresses that are not valid curve
// points, so no private key can sign for them.
type AddressDeriver interface {
	Derive(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error)
}

// DeriverFunc adapts a function to AddressDeriver.
type DeriverFunc func(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error)

func (f DeriverFunc) Derive(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return f(seeds, program)
}

// ProgramDeriver derives addresses with the Solana program-derived-address
// scheme: the highest bump for which sha256(seeds || bump || program ||
// "ProgramDerivedAddress") is off the ed25519 curve.
type ProgramDeriver struct{}

func (ProgramDeriver) Derive(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(seeds, program)
}

// SenderAuthority returns the sender authority of program and its bump.
// A nil deriver uses ProgramDeriver.
func SenderAuthority(d AddressDeriver, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	if d == nil {
		d = ProgramDeriver{}
	}
	authority, bump, err := d.Derive([][]byte{SenderSeed}, program)
	if err != nil {
		return solana.PublicKey{}, 0, wrapError(KindDerivation, RuleDerivation,
			"derive sender authority for program "+program.String(), err)
	}
	return authority, bump, nil
}
