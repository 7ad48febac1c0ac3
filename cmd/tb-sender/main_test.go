package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/message"
	"xdao.co/tokenbridge/sender"
	"xdao.co/tokenbridge/transfer"
)

func hexKey(b byte) string {
	var a message.ExternalAddress
	for i := range a {
		a[i] = b
	}
	return a.String()
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCLI_ResolveDirect(t *testing.T) {
	code, out, errOut := runCLI(t, "resolve", "--caller", hexKey(0x03))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != hexKey(0x03) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCLI_ResolveRelayed(t *testing.T) {
	program, err := message.ParseExternalAddress(hexKey(0x01))
	if err != nil {
		t.Fatalf("ParseExternalAddress: %v", err)
	}
	authority, _, err := sender.SenderAuthority(nil, program.PublicKey())
	if err != nil {
		t.Fatalf("SenderAuthority: %v", err)
	}

	code, out, errOut := runCLI(t, "resolve", "--caller", authority.String(), "--program", hexKey(0x01))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != hexKey(0x01) {
		t.Fatalf("expected program id, got %q", out)
	}

	code, _, errOut = runCLI(t, "resolve", "--caller", hexKey(0x02), "--program", hexKey(0x01))
	if code != 1 || !strings.HasPrefix(errOut, "unauthorized:") {
		t.Fatalf("expected unauthorized exit, got %d %q", code, errOut)
	}
}

func TestCLI_Derive(t *testing.T) {
	code, out, errOut := runCLI(t, "derive", "--program", hexKey(0x01))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	fields := strings.Split(strings.TrimSpace(out), "\t")
	if len(fields) != 2 {
		t.Fatalf("unexpected output %q", out)
	}
	authority, err := solana.PublicKeyFromBase58(fields[0])
	if err != nil {
		t.Fatalf("authority not base58: %v", err)
	}
	if solana.IsOnCurve(authority[:]) {
		t.Fatalf("authority must be off curve")
	}
}

func TestCLI_TransferNativeAndInspect(t *testing.T) {
	code, out, errOut := runCLI(t, "transfer", "native",
		"--seed-hex", strings.Repeat("42", 32),
		"--mint", hexKey(0x11),
		"--decimals", "9",
		"--amount", "1234567891",
		"--redeemer", hexKey(0xde),
		"--redeemer-chain", "2",
		"--nonce", "420",
		"--payload", "All your base are belong to us.",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	lines := map[string]string{}
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, _ := strings.Cut(l, "\t")
		lines[k] = v
	}
	if lines["dust"] != "1" {
		t.Fatalf("expected dust 1, got %q", lines["dust"])
	}
	if lines["message"] == "" || lines["cid"] == "" || lines["digest"] == "" {
		t.Fatalf("missing output fields: %q", out)
	}

	code, out, errOut = runCLI(t, "inspect", lines["message"])
	if code != 0 {
		t.Fatalf("inspect exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "amount\t123456789\n") || !strings.Contains(out, "from\t"+lines["sender"]+"\n") {
		t.Fatalf("unexpected inspect output %q", out)
	}
}

func TestCLI_TransferWrappedAsProgram(t *testing.T) {
	code, out, errOut := runCLI(t, "transfer", "wrapped",
		"--as-program", "--program", hexKey(0x01),
		"--token-chain", "2", "--token-address", hexKey(0x33),
		"--amount", "1000", "--redeemer", hexKey(0xde), "--redeemer-chain", "2",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "sender\t"+hexKey(0x01)+"\n") {
		t.Fatalf("expected program as sender, got %q", out)
	}
}

func TestCLI_TransferSpoofAborts(t *testing.T) {
	code, out, errOut := runCLI(t, "transfer", "native",
		"--seed-hex", strings.Repeat("42", 32),
		"--program", hexKey(0x01),
		"--mint", hexKey(0x11),
		"--amount", "1000", "--redeemer", hexKey(0xde), "--redeemer-chain", "2",
	)
	if code != 1 || !strings.HasPrefix(errOut, "unauthorized:") {
		t.Fatalf("expected unauthorized exit, got %d %q", code, errOut)
	}
	if out != "" {
		t.Fatalf("aborted transfer must not print a message, got %q", out)
	}
}

func TestCLI_Usage(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("expected usage exit 2")
	}
	if code, _, _ := runCLI(t, "bogus"); code != 2 {
		t.Fatalf("expected usage exit 2 for unknown command")
	}
	if code, _, _ := runCLI(t, "resolve"); code != 2 {
		t.Fatalf("expected usage exit 2 for missing --caller")
	}
	if code, _, _ := runCLI(t, "transfer", "native", "--as-program", "--redeemer", hexKey(0xde)); code != 2 {
		t.Fatalf("expected usage exit 2 for --as-program without --program")
	}
}

func TestCLI_TransferLocalChain(t *testing.T) {
	base := []string{"transfer", "wrapped",
		"--as-program", "--program", hexKey(0x01),
		"--token-chain", "2", "--token-address", hexKey(0x33),
		"--amount", "1000", "--redeemer", hexKey(0xde), "--redeemer-chain", "3",
	}

	code, _, errOut := runCLI(t, append(base, "--chain", "2")...)
	if code != 1 || !strings.Contains(errOut, transfer.ErrNativeWrappedAsset.Error()) {
		t.Fatalf("expected wrapped asset rejection on chain 2, got %d %q", code, errOut)
	}

	p := filepath.Join(t.TempDir(), "senderd.json")
	if err := os.WriteFile(p, []byte(`{"chain_id":2}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	code, _, errOut = runCLI(t, append(base, "--config", p)...)
	if code != 1 || !strings.Contains(errOut, transfer.ErrNativeWrappedAsset.Error()) {
		t.Fatalf("expected chain_id from config to apply, got %d %q", code, errOut)
	}

	code, _, errOut = runCLI(t, append(base, "--config", p, "--chain", "4")...)
	if code != 0 {
		t.Fatalf("--chain should override config: exit %d %q", code, errOut)
	}

	code, out, errOut := runCLI(t, "transfer", "native",
		"--seed-hex", strings.Repeat("42", 32), "--chain", "2",
		"--mint", hexKey(0x11), "--amount", "1000", "--redeemer", hexKey(0xde), "--redeemer-chain", "3",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	lines := map[string]string{}
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, _ := strings.Cut(l, "\t")
		lines[k] = v
	}
	code, out, _ = runCLI(t, "inspect", lines["message"])
	if code != 0 || !strings.Contains(out, "token_chain\t2\n") {
		t.Fatalf("expected token chain 2, got %d %q", code, out)
	}
}

func TestCLI_InspectUppercasePrefix(t *testing.T) {
	code, out, errOut := runCLI(t, "transfer", "native",
		"--seed-hex", "0X"+strings.Repeat("42", 32),
		"--mint", hexKey(0x11), "--amount", "1000", "--redeemer", hexKey(0xde), "--redeemer-chain", "2",
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var msg string
	for _, l := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(l, "message\t"); ok {
			msg = v
		}
	}
	code, out, errOut = runCLI(t, "inspect", "0X"+strings.TrimPrefix(msg, "0x"))
	if code != 0 {
		t.Fatalf("inspect exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "amount\t1000\n") {
		t.Fatalf("unexpected inspect output %q", out)
	}
}

func TestCLI_ResolveRemoteFlags(t *testing.T) {
	// Dialing does not block; the RPC itself fails against a closed port.
	code, _, errOut := runCLI(t, "resolve", "--caller", hexKey(0x03),
		"--grpc-target", "127.0.0.1:1", "--grpc-max-msg-bytes", "4096", "--timeout", "200ms")
	if code != 1 {
		t.Fatalf("expected failure against a closed port, got %d %q", code, errOut)
	}
	if code, _, _ := runCLI(t, "resolve", "--caller", hexKey(0x03), "--grpc-max-msg-bytes", "x"); code != 2 {
		t.Fatalf("expected usage exit for non-numeric --grpc-max-msg-bytes")
	}
}
