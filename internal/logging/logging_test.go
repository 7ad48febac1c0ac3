package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, dev := range []bool{false, true} {
		log, err := New(zapcore.WarnLevel, dev)
		if err != nil {
			t.Fatalf("New(dev=%v): %v", dev, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("info should be disabled at warn level")
		}
		if !log.Core().Enabled(zapcore.ErrorLevel) {
			t.Fatalf("error should be enabled at warn level")
		}
	}
}
