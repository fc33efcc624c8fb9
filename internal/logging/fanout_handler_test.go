package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("expected the single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsEachLevel(t *testing.T) {
	var warnBuf, infoBuf bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(h).With("show", "Our Blues")

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be disabled for both handlers")
	}
	logger.Info("character added")
	logger.Warn("lock held")

	if strings.Contains(warnBuf.String(), "character added") {
		t.Fatalf("warn handler received info record: %q", warnBuf.String())
	}
	for _, want := range []string{"character added", "lock held", "show=\"Our Blues\""} {
		if !strings.Contains(infoBuf.String(), want) {
			t.Fatalf("expected %q in %q", want, infoBuf.String())
		}
	}
	if !strings.Contains(warnBuf.String(), "lock held") {
		t.Fatalf("warn handler missed warning: %q", warnBuf.String())
	}
}
