package transfer

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
)

// Args are the instruction arguments shared by both transfer variants.
type Args struct {
	Nonce         uint32
	Amount        uint64
	Redeemer      message.ExternalAddress
	RedeemerChain message.ChainID
	Payload       []byte

	// CPIProgram is set when the instruction is invoked by another program
	// that wants the transfer attributed to itself.
	CPIProgram *solana.PublicKey
}

// instructionArgs is the Borsh layout of the instruction data, in field order.
type instructionArgs struct {
	Nonce         uint32
	Amount        uint64
	Redeemer      [32]byte
	RedeemerChain uint16
	Payload       []byte
	CPIProgram    *solana.PublicKey `bin:"optional"`
}

// Origin returns the call origin the arguments claim.
func (a Args) Origin() sender.CallOrigin { return sender.OriginFor(a.CPIProgram) }

// Encode returns the Borsh-encoded instruction arguments, the bytes a key
// holder signs to authorize the request.
func (a Args) Encode() ([]byte, error) {
	var buf bytes.Buffer
	err := bin.NewBorshEncoder(&buf).Encode(instructionArgs{
		Nonce:         a.Nonce,
		Amount:        a.Amount,
		Redeemer:      a.Redeemer,
		RedeemerChain: uint16(a.RedeemerChain),
		Payload:       a.Payload,
		CPIProgram:    a.CPIProgram,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
