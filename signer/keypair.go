package signer

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/gagliardetto/solana-go"
)

// KeyPair is an ed25519 key held by a user.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// NewKeyPairFromSeed returns the key pair for a 32-byte ed25519 seed.
func NewKeyPairFromSeed(seed []byte) (KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return KeyPair{}, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrKeySize, ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return KeyPair{Public: pub, Private: priv}, nil
}

// PublicKey returns the Solana form of the public key.
func (k KeyPair) PublicKey() solana.PublicKey { return solana.PublicKeyFromBytes(k.Public) }

// Sign signs msg.
func (k KeyPair) Sign(msg []byte) []byte { return ed25519.Sign(k.Private, msg) }

// Authenticate signs msg and verifies the signature, returning the Signer a
// verifier would obtain.
func (k KeyPair) Authenticate(msg []byte) (Signer, error) {
	return Authenticate(k.Public, msg, k.Sign(msg))
}
