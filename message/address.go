package message

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
)

// ExternalAddressLength is the fixed width of an address inside a bridge message.
const ExternalAddressLength = 32

// ExternalAddress is the canonical 32-byte address representation used by
// cross-chain messages, independent of the address format of any one chain.
type ExternalAddress [ExternalAddressLength]byte

// ChainID identifies a chain in the bridge's chain registry.
type ChainID uint16

const (
	ChainUnset  ChainID = 0
	ChainSolana ChainID = 1
)

// ExternalAddressFromPublicKey encodes a Solana public key. Solana keys are
// already 32 bytes, so the encoding is the identity.
func ExternalAddressFromPublicKey(pk solana.PublicKey) ExternalAddress {
	return ExternalAddress(pk)
}

// ParseExternalAddress parses a 32-byte address from hex, with or without 0x.
func ParseExternalAddress(s string) (ExternalAddress, error) {
	var out ExternalAddress
	b, err := DecodeHex(s)
	if err != nil {
		return out, fmt.Errorf("external address: %w", err)
	}
	if len(b) != ExternalAddressLength {
		return out, fmt.Errorf("external address must be %d bytes, got %d", ExternalAddressLength, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// DecodeHex decodes hex with an optional 0x or 0X prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0X") {
		s = "0x" + s[2:]
	} else if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

func (a ExternalAddress) Bytes() []byte {
	out := make([]byte, ExternalAddressLength)
	copy(out, a[:])
	return out
}

func (a ExternalAddress) IsZero() bool { return a == ExternalAddress{} }

// PublicKey reinterprets the address as a Solana public key.
func (a ExternalAddress) PublicKey() solana.PublicKey { return solana.PublicKey(a) }

// String renders the address as 0x-prefixed lowercase hex.
func (a ExternalAddress) String() string { return hexutil.Encode(a[:]) }
