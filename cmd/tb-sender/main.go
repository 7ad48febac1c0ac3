package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/rpc"
	"xdao.co/tokenbridge/sender"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "resolve":
		return cmdResolve(args[1:], out, errOut)
	case "derive":
		return cmdDerive(args[1:], out, errOut)
	case "transfer":
		return cmdTransfer(args[1:], out, errOut)
	case "inspect":
		return cmdInspect(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "tb-sender: token bridge sender address tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tb-sender resolve --caller <key> [--program <key>] [--grpc-target <host:port>] [--timeout <d>] [--grpc-max-msg-bytes <n>]")
	fmt.Fprintln(w, "  tb-sender derive --program <key>")
	fmt.Fprintln(w, "  tb-sender transfer native (--seed-hex <64hex> | --as-program) [--program <key>] [--chain <n> | --config <file>] --mint <key> --decimals <n> --amount <n> --redeemer <hex32> --redeemer-chain <n> [--nonce <n>] [--payload <text>]")
	fmt.Fprintln(w, "  tb-sender transfer wrapped (--seed-hex <64hex> | --as-program) [--program <key>] [--chain <n> | --config <file>] --token-chain <n> --token-address <hex32> [--decimals <n>] --amount <n> --redeemer <hex32> --redeemer-chain <n> [--nonce <n>] [--payload <text>]")
	fmt.Fprintln(w, "  tb-sender inspect <hex>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <key> is base58 or 0x-prefixed hex (32 bytes)")
	fmt.Fprintln(w, "  - resolve prints the 32-byte sender address as 0x hex")
	fmt.Fprintln(w, "  - --as-program signs as the program's sender authority, as a cross-program invocation would")
	fmt.Fprintln(w, "  - --chain (or chain_id from a tb-senderd --config file) sets the local chain id; default 1 (Solana)")
	fmt.Fprintln(w, "  - transfer prints the sender, digest, CID and encoded message")
}

func parseKey(s string) (solana.PublicKey, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		a, err := message.ParseExternalAddress(s)
		if err != nil {
			return solana.PublicKey{}, err
		}
		return a.PublicKey(), nil
	}
	return solana.PublicKeyFromBase58(s)
}

func cmdResolve(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var callerStr, programStr, target string
	var timeout time.Duration
	var maxMsgBytes int
	fs.StringVar(&callerStr, "caller", "", "Authenticated caller key")
	fs.StringVar(&programStr, "program", "", "Invoking program id (cross-program invocation)")
	fs.StringVar(&target, "grpc-target", "", "Resolve remotely via a tb-senderd at host:port")
	fs.DurationVar(&timeout, "timeout", 5*time.Second, "Dial and per-RPC timeout (with --grpc-target)")
	fs.IntVar(&maxMsgBytes, "grpc-max-msg-bytes", 0, "Max gRPC message size in bytes (send+recv); 0 uses grpc defaults")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if callerStr == "" {
		fmt.Fprintln(errOut, "missing --caller")
		return 2
	}
	caller, err := parseKey(callerStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --caller: %v\n", err)
		return 2
	}
	var origin sender.CallOrigin = sender.Direct{}
	if programStr != "" {
		program, err := parseKey(programStr)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --program: %v\n", err)
			return 2
		}
		origin = sender.Relayed{Program: program}
	}

	var addr message.ExternalAddress
	if target != "" {
		client, err := rpc.Dial(target, rpc.DialOptions{Timeout: timeout, MaxMsgBytes: maxMsgBytes})
		if err != nil {
			fmt.Fprintf(errOut, "dial: %v\n", err)
			return 1
		}
		defer client.Close()
		client.Timeout = timeout
		addr, err = client.Resolve(context.Background(), caller, origin)
		if err != nil {
			return reportErr(errOut, "resolve", err)
		}
	} else {
		addr, err = sender.Resolve(caller, origin)
		if err != nil {
			return reportErr(errOut, "resolve", err)
		}
	}
	_, _ = fmt.Fprintln(out, addr.String())
	return 0
}

// reportErr prints err; rejected program claims get a dedicated prefix.
func reportErr(errOut io.Writer, op string, err error) int {
	if sender.IsAuthorization(err) {
		fmt.Fprintf(errOut, "unauthorized: %v\n", err)
		return 1
	}
	fmt.Fprintf(errOut, "%s: %v\n", op, err)
	return 1
}

func cmdDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var programStr string
	fs.StringVar(&programStr, "program", "", "Program id")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if programStr == "" {
		fmt.Fprintln(errOut, "missing --program")
		return 2
	}
	program, err := parseKey(programStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --program: %v\n", err)
		return 2
	}
	authority, bump, err := sender.SenderAuthority(nil, program)
	if err != nil {
		fmt.Fprintf(errOut, "derive: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "%s\t%d\n", authority, bump)
	return 0
}

func cmdInspect(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: tb-sender inspect <hex>")
		return 2
	}
	b, err := message.DecodeHex(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex: %v\n", err)
		return 2
	}
	m, err := message.DecodeTransferWithPayload(b)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "amount\t%s\n", m.Amount)
	fmt.Fprintf(out, "token_address\t%s\n", m.TokenAddress)
	fmt.Fprintf(out, "token_chain\t%d\n", m.TokenChain)
	fmt.Fprintf(out, "to\t%s\n", m.To)
	fmt.Fprintf(out, "to_chain\t%d\n", m.ToChain)
	fmt.Fprintf(out, "from\t%s\n", m.FromAddress)
	fmt.Fprintf(out, "payload\t%s\n", hex.EncodeToString(m.Payload))
	return 0
}
