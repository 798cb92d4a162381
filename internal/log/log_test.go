package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	SetLogger(nil)
	// Must not panic or write anywhere.
	Debugw("ignored", "k", 1)
	Warnw("ignored")
	Sync()
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Debugw("kepler", "iterations", 3)
	Warnw("cap reached", "meanAnomaly", 12.5)
	Infof("level %s", "neon")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[1].Level != zap.WarnLevel || entries[1].Message != "cap reached" {
		t.Errorf("entry 1 = %v %q", entries[1].Level, entries[1].Message)
	}
	if got := entries[0].ContextMap()["iterations"]; got != int64(3) {
		t.Errorf("iterations field = %v, want 3", got)
	}
	if entries[2].Message != "level neon" {
		t.Errorf("Infof message = %q", entries[2].Message)
	}
}

func TestInit(t *testing.T) {
	defer SetLogger(nil)
	if err := Init(false); err != nil {
		t.Fatalf("Init(false): %v", err)
	}
	if GetSugaredLogger() == nil {
		t.Fatal("GetSugaredLogger returned nil after Init")
	}
}
