package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerContextRoundtrip(t *testing.T) {
	var b strings.Builder
	l := newLogger(&b, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Error("logger did not round-trip through context")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("expected the default logger, got nil")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var b strings.Builder
	l := newLogger(&b, log.InfoLevel)
	l.Debug("hidden")
	l.Info("shown")
	out := b.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing")
	}
}

func TestProgressDone(t *testing.T) {
	var b strings.Builder
	p := newProgress(newLogger(&b, log.InfoLevel))
	p.done("Computed layout")
	if !strings.Contains(b.String(), "Computed layout (") {
		t.Errorf("unexpected progress output: %q", b.String())
	}
}
