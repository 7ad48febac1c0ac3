package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"xdao.co/tokenbridge/message"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "senderd.json")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `{}`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if cfg.ChainID != message.ChainSolana {
		t.Fatalf("chain = %d", cfg.ChainID)
	}
	lvl, err := cfg.Log.ZapLevel()
	if err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("level = %v, %v", lvl, err)
	}
}

func TestLoadFile_Values(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `{"listen":"0.0.0.0:9000","max_msg_bytes":4096,"chain_id":2,"metrics_listen":"127.0.0.1:9001","log":{"level":"debug","development":true}}`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" || cfg.MaxMsgBytes != 4096 || !cfg.Log.Development ||
		cfg.ChainID != 2 || cfg.MetricsListen != "127.0.0.1:9001" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := []string{
		`{"listen":"no-port"}`,
		`{"max_msg_bytes":-1}`,
		`{"metrics_listen":"9001"}`,
		`{"log":{"level":"loud"}}`,
		`not json`,
	}
	for _, body := range cases {
		if _, err := LoadFile(writeConfig(t, body)); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
