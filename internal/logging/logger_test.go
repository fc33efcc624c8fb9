package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spenweb/kd/internal/config"
	"github.com/spenweb/kd/internal/logging"
)

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
	if !strings.Contains(string(content), "INFO message without caller") {
		t.Fatalf("unexpected console line: %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerRendersComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "store").Info("saved collection",
		logging.String(logging.FieldPath, "/tmp/my shows.json"),
		logging.Int("shows", 3),
		logging.Error(errors.New("boom")),
	)

	line := buf.String()
	for _, want := range []string{"store: saved collection", `path="/tmp/my shows.json"`, "shows=3", "error=boom"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as prefix, got %q", line)
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if record["msg"] != "json message" || record["k"] != "v" || record["level"] != "info" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigVerbosity(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "warn"

	cases := []struct {
		verbosity int
		infoShown bool
		debugShow bool
	}{
		{0, false, false},
		{1, true, false},
		{2, true, true},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		logger, err := logging.NewFromConfig(&cfg, tc.verbosity, &buf)
		if err != nil {
			t.Fatalf("NewFromConfig: %v", err)
		}
		logger.Info("info line")
		logger.Debug("debug line")
		out := buf.String()
		if got := strings.Contains(out, "info line"); got != tc.infoShown {
			t.Fatalf("verbosity %d: info shown = %v", tc.verbosity, got)
		}
		if got := strings.Contains(out, "debug line"); got != tc.debugShow {
			t.Fatalf("verbosity %d: debug shown = %v", tc.verbosity, got)
		}
	}
}

func TestWithContextAddsCommand(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithCommand(context.Background(), "add show")
	logging.WithContext(ctx, logger).Info("contextual log")

	if !strings.Contains(buf.String(), `command="add show"`) {
		t.Fatalf("expected command field, got %q", buf.String())
	}
	if _, ok := logging.CommandFromContext(context.Background()); ok {
		t.Fatal("expected no command on a bare context")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}

func TestNewFromConfigTeesToLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "warn"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "kd.log")

	var console bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, 0, &console)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("show added", logging.String(logging.FieldShow, "Our Blues"))

	if console.Len() != 0 {
		t.Fatalf("info should stay off the console at warn, got %q", console.String())
	}
	data, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	if record["msg"] != "show added" || record["show"] != "Our Blues" {
		t.Fatalf("unexpected record: %v", record)
	}
}
