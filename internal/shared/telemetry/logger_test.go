package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Info("plan.generated", map[string]any{"source": "rules", "count": 3})
	Warn("store.failed", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["source"] != "rules" {
		t.Fatalf("expected source field, got %v", ctx)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %s", entries[1].Level)
	}
	if entries[1].ContextMap()["error"] != "boom" {
		t.Fatalf("expected error field, got %v", entries[1].ContextMap())
	}
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	l, err := newLogger("chatty")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at default level")
	}
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info enabled")
	}
}
