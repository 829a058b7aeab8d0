package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("missing attribute: %s", out)
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("also hidden")
	if buf.Len() > 0 {
		t.Fatalf("unexpected output below warn: %s", buf.String())
	}
	log.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("missing warn message: %s", buf.String())
	}
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	log.Info("fitted vocabulary", "size", 42)

	out := buf.String()
	if !strings.Contains(out, "fitted vocabulary") {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, "size=42") {
		t.Fatalf("missing attribute: %s", out)
	}
}

func TestWithAddsAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo).With("vocab", "v.json")
	log.Info("encode")
	if !strings.Contains(buf.String(), "vocab=v.json") {
		t.Fatalf("missing bound attribute: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("through context")
	if !strings.Contains(buf.String(), "through context") {
		t.Fatalf("context logger not used: %s", buf.String())
	}

	// Missing logger falls back to a usable default.
	if FromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}
