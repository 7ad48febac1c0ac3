package message

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/multiformats/go-multihash"
)

func fill(b byte) ExternalAddress {
	var a ExternalAddress
	for i := range a {
		a[i] = b
	}
	return a
}

func TestExternalAddress_ParseAndString(t *testing.T) {
	a := fill(0xab)
	s := a.String()
	if !strings.HasPrefix(s, "0x") || len(s) != 2+64 {
		t.Fatalf("unexpected rendering %q", s)
	}
	got, err := ParseExternalAddress(s)
	if err != nil {
		t.Fatalf("ParseExternalAddress: %v", err)
	}
	if got != a {
		t.Fatalf("address mismatch")
	}
	got, err = ParseExternalAddress(strings.TrimPrefix(s, "0x"))
	if err != nil {
		t.Fatalf("ParseExternalAddress without prefix: %v", err)
	}
	if got != a {
		t.Fatalf("address mismatch without prefix")
	}
	got, err = ParseExternalAddress("0X" + strings.TrimPrefix(s, "0x"))
	if err != nil {
		t.Fatalf("ParseExternalAddress with 0X prefix: %v", err)
	}
	if got != a {
		t.Fatalf("address mismatch with 0X prefix")
	}
	if _, err := ParseExternalAddress("0xdeadbeef"); err == nil {
		t.Fatalf("expected length error")
	}
	if _, err := ParseExternalAddress("0xzz"); err == nil {
		t.Fatalf("expected hex error")
	}
}

func TestDecodeHex_Prefixes(t *testing.T) {
	for _, in := range []string{"deadbeef", "0xdeadbeef", "0XDEADBEEF", " 0xdeadbeef\n"} {
		b, err := DecodeHex(in)
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", in, err)
		}
		if hex.EncodeToString(b) != "deadbeef" {
			t.Fatalf("DecodeHex(%q) = %x", in, b)
		}
	}
	if _, err := DecodeHex("0x0X00"); err == nil {
		t.Fatalf("expected error for doubled prefix")
	}
}

func TestExternalAddressFromPublicKey_Identity(t *testing.T) {
	pk := solana.PublicKey(fill(0x03))
	a := ExternalAddressFromPublicKey(pk)
	if !bytes.Equal(a.Bytes(), pk.Bytes()) {
		t.Fatalf("expected identity encoding")
	}
	if a.PublicKey() != pk {
		t.Fatalf("expected round trip to public key")
	}
	if a.IsZero() || !(ExternalAddress{}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestTransferWithPayload_Layout(t *testing.T) {
	msg := &TransferWithPayload{
		Amount:       big.NewInt(88888888),
		TokenAddress: fill(0x11),
		TokenChain:   ChainSolana,
		To:           fill(0xde),
		ToChain:      2,
		FromAddress:  fill(0x01),
		Payload:      []byte("All your base are belong to us."),
	}
	b, err := msg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != 133+len(msg.Payload) {
		t.Fatalf("unexpected length %d", len(b))
	}
	if b[0] != PayloadIDTransferWithPayload {
		t.Fatalf("payload id = %d", b[0])
	}
	if got := new(big.Int).SetBytes(b[1:33]); got.Cmp(msg.Amount) != 0 {
		t.Fatalf("amount = %s", got)
	}
	if hex.EncodeToString(b[65:67]) != "0001" {
		t.Fatalf("token chain bytes = %x", b[65:67])
	}
	if hex.EncodeToString(b[99:101]) != "0002" {
		t.Fatalf("to chain bytes = %x", b[99:101])
	}
	if !bytes.Equal(b[101:133], msg.FromAddress[:]) {
		t.Fatalf("from address not at offset 101")
	}

	dec, err := DecodeTransferWithPayload(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Amount.Cmp(msg.Amount) != 0 || dec.TokenAddress != msg.TokenAddress || dec.TokenChain != msg.TokenChain ||
		dec.To != msg.To || dec.ToChain != msg.ToChain || dec.FromAddress != msg.FromAddress ||
		!bytes.Equal(dec.Payload, msg.Payload) {
		t.Fatalf("decoded message mismatch: %+v", dec)
	}
}

func TestTransferWithPayload_Errors(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := (&TransferWithPayload{Amount: over}).Encode(); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected ErrAmountOverflow, got %v", err)
	}
	if _, err := (&TransferWithPayload{Amount: big.NewInt(-1)}).Encode(); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("expected ErrAmountOverflow for negative amount, got %v", err)
	}
	if _, err := DecodeTransferWithPayload(make([]byte, 10)); !errors.Is(err, ErrShortPayload) {
		t.Fatalf("expected ErrShortPayload, got %v", err)
	}
	b := make([]byte, 133)
	b[0] = 1
	if _, err := DecodeTransferWithPayload(b); !errors.Is(err, ErrPayloadID) {
		t.Fatalf("expected ErrPayloadID, got %v", err)
	}
}

func TestDigestAndCIDAgree(t *testing.T) {
	b := []byte("hello bridge")
	d := Digest(b)
	if d == Digest([]byte("hello bridge!")) {
		t.Fatalf("expected different digests")
	}
	// keccak-256("") is a well-known constant.
	empty := Digest(nil)
	if hex.EncodeToString(empty[:]) != "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470" {
		t.Fatalf("unexpected keccak-256 of empty input: %x", empty)
	}

	id, err := CID(b)
	if err != nil {
		t.Fatalf("CID: %v", err)
	}
	dm, err := multihash.Decode(id.Hash())
	if err != nil {
		t.Fatalf("multihash.Decode: %v", err)
	}
	if dm.Code != multihash.KECCAK_256 {
		t.Fatalf("unexpected multihash code %x", dm.Code)
	}
	if !bytes.Equal(dm.Digest, d[:]) {
		t.Fatalf("CID digest does not match Digest")
	}
}
