package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"xdao.co/tokenbridge/config"
	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
	"xdao.co/tokenbridge/signer"
	"xdao.co/tokenbridge/transfer"
)

type transferFlags struct {
	seedHex       string
	asProgram     bool
	program       string
	nonce         uint
	amount        uint64
	redeemer      string
	redeemerChain uint
	payload       string
	decimals      uint
	chain         uint
	configPath    string
}

func (f *transferFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.seedHex, "seed-hex", "", "Caller ed25519 seed as 64 hex chars")
	fs.BoolVar(&f.asProgram, "as-program", false, "Sign as --program's sender authority")
	fs.StringVar(&f.program, "program", "", "Invoking program id to attribute the transfer to")
	fs.UintVar(&f.nonce, "nonce", 0, "Message nonce")
	fs.Uint64Var(&f.amount, "amount", 0, "Amount in the mint's units")
	fs.StringVar(&f.redeemer, "redeemer", "", "Redeemer address (32 bytes hex)")
	fs.UintVar(&f.redeemerChain, "redeemer-chain", 0, "Redeemer chain id")
	fs.StringVar(&f.payload, "payload", "", "Payload text")
	fs.UintVar(&f.decimals, "decimals", 8, "Mint decimals")
	fs.UintVar(&f.chain, "chain", 0, "Local chain id (overrides --config); 0 means Solana")
	fs.StringVar(&f.configPath, "config", "", "tb-senderd JSON config to read chain_id from")
}

// localChain returns the chain the handlers run on: --chain, else the
// config's chain_id, else Solana.
func (f *transferFlags) localChain() (message.ChainID, error) {
	if f.chain > 0xffff {
		return message.ChainUnset, fmt.Errorf("--chain out of range")
	}
	if f.chain != 0 {
		return message.ChainID(f.chain), nil
	}
	if f.configPath != "" {
		cfg, err := config.LoadFile(f.configPath)
		if err != nil {
			return message.ChainUnset, err
		}
		return cfg.ChainID, nil
	}
	return message.ChainSolana, nil
}

// args builds the instruction arguments and the authenticated signer.
func (f *transferFlags) args() (transfer.Args, signer.Signer, error) {
	var a transfer.Args
	if f.redeemer == "" {
		return a, signer.Signer{}, fmt.Errorf("missing --redeemer")
	}
	redeemer, err := message.ParseExternalAddress(f.redeemer)
	if err != nil {
		return a, signer.Signer{}, fmt.Errorf("invalid --redeemer: %w", err)
	}
	if f.nonce > 0xffffffff || f.redeemerChain > 0xffff || f.decimals > 0xff {
		return a, signer.Signer{}, fmt.Errorf("--nonce, --redeemer-chain or --decimals out of range")
	}
	a = transfer.Args{
		Nonce:         uint32(f.nonce),
		Amount:        f.amount,
		Redeemer:      redeemer,
		RedeemerChain: message.ChainID(f.redeemerChain),
		Payload:       []byte(f.payload),
	}
	if f.program != "" {
		p, err := parseKey(f.program)
		if err != nil {
			return a, signer.Signer{}, fmt.Errorf("invalid --program: %w", err)
		}
		a.CPIProgram = &p
	}

	switch {
	case f.asProgram && f.seedHex != "":
		return a, signer.Signer{}, fmt.Errorf("--as-program and --seed-hex are mutually exclusive")
	case f.asProgram:
		if a.CPIProgram == nil {
			return a, signer.Signer{}, fmt.Errorf("--as-program requires --program")
		}
		_, bump, err := sender.SenderAuthority(nil, *a.CPIProgram)
		if err != nil {
			return a, signer.Signer{}, err
		}
		s, err := signer.FromProgram(*a.CPIProgram, sender.SenderSeed, []byte{bump})
		return a, s, err
	case f.seedHex != "":
		seed, err := message.DecodeHex(f.seedHex)
		if err != nil {
			return a, signer.Signer{}, fmt.Errorf("invalid --seed-hex: %w", err)
		}
		kp, err := signer.NewKeyPairFromSeed(seed)
		if err != nil {
			return a, signer.Signer{}, fmt.Errorf("invalid --seed-hex: %w", err)
		}
		b, err := a.Encode()
		if err != nil {
			return a, signer.Signer{}, err
		}
		s, err := kp.Authenticate(b)
		return a, s, err
	default:
		return a, signer.Signer{}, fmt.Errorf("one of --seed-hex or --as-program is required")
	}
}

func cmdTransfer(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: tb-sender transfer <native|wrapped> ...")
		return 2
	}
	kind := args[0]
	if kind != "native" && kind != "wrapped" {
		fmt.Fprintf(errOut, "unknown transfer kind: %s\n", kind)
		return 2
	}
	fs := flag.NewFlagSet("transfer "+kind, flag.ContinueOnError)
	fs.SetOutput(errOut)
	var f transferFlags
	f.register(fs)

	var mintStr, tokenAddress string
	var tokenChain uint
	if kind == "native" {
		fs.StringVar(&mintStr, "mint", "", "Mint address")
	} else {
		fs.StringVar(&tokenAddress, "token-address", "", "Origin token address (32 bytes hex)")
		fs.UintVar(&tokenChain, "token-chain", 0, "Origin chain id")
	}

	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	local, err := f.localChain()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	a, s, err := f.args()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	resolver := &sender.Resolver{}
	var ob *transfer.Outbound
	switch kind {
	case "native":
		if mintStr == "" {
			fmt.Fprintln(errOut, "missing --mint")
			return 2
		}
		mint, err := parseKey(mintStr)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --mint: %v\n", err)
			return 2
		}
		h := &transfer.Native{Resolver: resolver, Chain: local}
		ob, err = h.Transfer(s, transfer.NativeAsset{Mint: mint, Decimals: uint8(f.decimals)}, a)
		if err != nil {
			return reportErr(errOut, "transfer", err)
		}
	case "wrapped":
		if tokenAddress == "" || tokenChain == 0 || tokenChain > 0xffff {
			fmt.Fprintln(errOut, "missing or invalid --token-address/--token-chain")
			return 2
		}
		ta, err := message.ParseExternalAddress(tokenAddress)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --token-address: %v\n", err)
			return 2
		}
		asset := transfer.WrappedAsset{TokenChain: message.ChainID(tokenChain), TokenAddress: ta, Decimals: uint8(f.decimals)}
		h := &transfer.Wrapped{Resolver: resolver, Chain: local}
		ob, err = h.Transfer(s, asset, a)
		if err != nil {
			return reportErr(errOut, "transfer", err)
		}
	}

	fmt.Fprintf(out, "sender\t%s\n", ob.Message.FromAddress)
	fmt.Fprintf(out, "digest\t%s\n", hexutil.Encode(ob.Digest[:]))
	fmt.Fprintf(out, "cid\t%s\n", ob.CID)
	if ob.Dust > 0 {
		fmt.Fprintf(out, "dust\t%d\n", ob.Dust)
	}
	fmt.Fprintf(out, "message\t%s\n", hexutil.Encode(ob.Encoded))
	return 0
}
