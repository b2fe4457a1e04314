package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, FormatConsole)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := NewNop()

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelGating(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn doesn't log at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
		{"unknown level defaults to info", "verbose", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newWithWriter(tt.configLevel, FormatJSON, &buf)
			ctx := context.Background()

			switch tt.logLevel {
			case "debug":
				log.Debug(ctx, "msg")
			case "info":
				log.Info(ctx, "msg")
			case "warn":
				log.Warn(ctx, "msg")
			case "error":
				log.Error(ctx, "msg")
			}

			if got := buf.Len() > 0; got != tt.shouldLog {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.shouldLog, buf.String())
			}
		})
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("info", FormatJSON, &buf)

	ctx := WithFile(WithRunID(context.Background(), "run-1"), "talk.mp4")
	log.Info(ctx, "processed %d segments", 12)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line[FieldRunID] != "run-1" {
		t.Errorf("run_id = %v, want run-1", line[FieldRunID])
	}
	if line[FieldFile] != "talk.mp4" {
		t.Errorf("file = %v, want talk.mp4", line[FieldFile])
	}
	if line["message"] != "processed 12 segments" {
		t.Errorf("message = %v", line["message"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("info", FormatConsole, &buf)
	log.Warn(context.Background(), "disk %s", "full")

	out := buf.String()
	if !strings.Contains(out, "disk full") {
		t.Errorf("console output %q should contain message", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output to a buffer should not be colored: %q", out)
	}
}
