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
	log.Info("decoded file", "layers", 12)

	out := buf.String()
	if !strings.Contains(out, "decoded file") {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, `"layers":12`) {
		t.Fatalf("missing attribute: %s", out)
	}
	if !strings.Contains(out, `"level":"INFO"`) {
		t.Fatalf("missing level: %s", out)
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)

	log.Info("dropped")
	log.Debug("dropped too")
	if buf.Len() > 0 {
		t.Fatalf("info/debug should be filtered at warn level: %s", buf.String())
	}

	log.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn record missing: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo).With("component", "decoder")
	log.Info("hello")

	if !strings.Contains(buf.String(), `"component":"decoder"`) {
		t.Fatalf("bound attribute missing: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)

	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("via context")

	if !strings.Contains(buf.String(), "via context") {
		t.Fatalf("context logger not used: %s", buf.String())
	}
}

func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a fallback logger")
	}
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelDebug)
	log.Debug("scanning header", "path", "part.cli")

	out := buf.String()
	if !strings.Contains(out, "scanning header") {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, "path=part.cli") {
		t.Fatalf("missing attribute: %s", out)
	}
}

func TestPrettyQuotesValuesWithSpaces(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	log.Info("open", "path", "my part.cli")

	if !strings.Contains(buf.String(), `path="my part.cli"`) {
		t.Fatalf("expected quoted value: %s", buf.String())
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestPrettyHandlerGroups(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	log := slog.New(h.WithGroup("api").WithGroup("layers"))
	log.Info("request", "index", "3")

	if !strings.Contains(buf.String(), "api.layers.index=3") {
		t.Fatalf("expected dotted group prefix: %s", buf.String())
	}

	if h.WithGroup("") != slog.Handler(h) {
		t.Fatal("empty group should return the handler unchanged")
	}
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "clif")}))
	log.Info("up")

	if !strings.Contains(buf.String(), "service=clif") {
		t.Fatalf("bound attribute missing: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
