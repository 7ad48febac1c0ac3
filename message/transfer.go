package message

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// PayloadIDTransferWithPayload tags a token transfer that carries an
// arbitrary payload for the redeemer.
const PayloadIDTransferWithPayload uint8 = 3

// transferWithPayloadHeaderLen is every fixed-width field ahead of the payload.
const transferWithPayloadHeaderLen = 1 + 32 + 32 + 2 + 32 + 2 + 32

// TransferWithPayload is the token bridge message emitted when tokens are sent
// with an attached payload. FromAddress is the resolved sender identity.
type TransferWithPayload struct {
	Amount       *big.Int
	TokenAddress ExternalAddress
	TokenChain   ChainID
	To           ExternalAddress
	ToChain      ChainID
	FromAddress  ExternalAddress
	Payload      []byte
}

// Encode returns the wire layout:
//
//	u8 payload_id | u256 amount | [32] token_address | u16 token_chain |
//	[32] to | u16 to_chain | [32] from_address | payload
func (t *TransferWithPayload) Encode() ([]byte, error) {
	amount := t.Amount
	if amount == nil {
		amount = new(big.Int)
	}
	if amount.Sign() < 0 || amount.BitLen() > 256 {
		return nil, ErrAmountOverflow
	}

	out := make([]byte, transferWithPayloadHeaderLen+len(t.Payload))
	off := 0
	out[off] = PayloadIDTransferWithPayload
	off++
	amount.FillBytes(out[off : off+32])
	off += 32
	off += copy(out[off:], t.TokenAddress[:])
	binary.BigEndian.PutUint16(out[off:], uint16(t.TokenChain))
	off += 2
	off += copy(out[off:], t.To[:])
	binary.BigEndian.PutUint16(out[off:], uint16(t.ToChain))
	off += 2
	off += copy(out[off:], t.FromAddress[:])
	copy(out[off:], t.Payload)
	return out, nil
}

// DecodeTransferWithPayload parses bytes produced by Encode.
func DecodeTransferWithPayload(b []byte) (*TransferWithPayload, error) {
	if len(b) < transferWithPayloadHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortPayload, len(b))
	}
	if b[0] != PayloadIDTransferWithPayload {
		return nil, fmt.Errorf("%w: %d", ErrPayloadID, b[0])
	}
	t := &TransferWithPayload{}
	off := 1
	t.Amount = new(big.Int).SetBytes(b[off : off+32])
	off += 32
	off += copy(t.TokenAddress[:], b[off:off+32])
	t.TokenChain = ChainID(binary.BigEndian.Uint16(b[off:]))
	off += 2
	off += copy(t.To[:], b[off:off+32])
	t.ToChain = ChainID(binary.BigEndian.Uint16(b[off:]))
	off += 2
	off += copy(t.FromAddress[:], b[off:off+32])
	t.Payload = append([]byte(nil), b[off:]...)
	return t, nil
}
