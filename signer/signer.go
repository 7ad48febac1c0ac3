// Package signer produces authenticated transfer signers.
//
// A Signer can only be obtained by proving control of a key (Authenticate)
// or by a program signing for one of its own program addresses
// (FromProgram), mirroring how the runtime grants signer status.
package signer

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrKeySize      = errors.New("signer: invalid ed25519 key size")
	ErrBadSignature = errors.New("signer: signature verification failed")
	ErrOnCurve      = errors.New("signer: seeds do not produce a program address")
)

// Signer is an identity whose control has been proven for one request.
type Signer struct {
	key     solana.PublicKey
	program *solana.PublicKey
}

// Key returns the authenticated public key.
func (s Signer) Key() solana.PublicKey { return s.key }

// Program returns the program that signed for Key, if the signer was
// produced by FromProgram.
func (s Signer) Program() (solana.PublicKey, bool) {
	if s.program == nil {
		return solana.PublicKey{}, false
	}
	return *s.program, true
}

// Authenticate verifies an ed25519 signature over msg and returns the signer.
func Authenticate(pub []byte, msg, sig []byte) (Signer, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Signer{}, fmt.Errorf("%w: public key is %d bytes", ErrKeySize, len(pub))
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		return Signer{}, ErrBadSignature
	}
	return Signer{key: solana.PublicKeyFromBytes(pub)}, nil
}

// FromProgram returns the signer program obtains by signing with seeds during
// a cross-program invocation. seeds must include the bump.
func FromProgram(program solana.PublicKey, seeds ...[]byte) (Signer, error) {
	addr, err := solana.CreateProgramAddress(seeds, program)
	if err != nil {
		return Signer{}, fmt.Errorf("%w: %v", ErrOnCurve, err)
	}
	p := program
	return Signer{key: addr, program: &p}, nil
}
