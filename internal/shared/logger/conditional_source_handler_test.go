package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConditionalSourceHandlerPerLevel(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		wantSource       bool
	}{
		{"info hidden by default", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"debug hidden by default", slog.LevelDebug, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn shows source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error shows source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info shown when configured", slog.LevelInfo, []slog.Level{slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "probe")

			got := strings.Contains(buf.String(), "source=")
			if got != tt.wantSource {
				t.Errorf("source attribute: got %v, want %v, output %q", got, tt.wantSource, buf.String())
			}
		})
	}
}

func TestConditionalSourceHandlerPreservesAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("org_id", 42)

	log.Info("probe")

	out := buf.String()
	if strings.Contains(out, "source=") {
		t.Errorf("info level should not carry source, output %q", out)
	}
	if !strings.Contains(out, "org_id=42") {
		t.Errorf("attrs should pass through, output %q", out)
	}
}

func TestConditionalSourceHandlerEnabledDelegates(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled")
	}
}
