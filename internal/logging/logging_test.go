package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"off", LevelNone},
		{"garbage", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the level were emitted:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages at or above the level were suppressed:\n%s", out)
	}
}

func TestLogger_NoneSuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelNone, Output: &buf})

	logger.Error("error message", errors.New("boom"))
	if buf.Len() != 0 {
		t.Errorf("LevelNone emitted output: %q", buf.String())
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.Debug("completion request", Fields{"model": "gpt-4o-mini", "max_tokens": 100})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry.Level != "DEBUG" {
		t.Errorf("entry level = %q, want DEBUG", entry.Level)
	}
	if entry.Message != "completion request" {
		t.Errorf("entry message = %q", entry.Message)
	}
	if entry.Fields["model"] != "gpt-4o-mini" {
		t.Errorf("entry fields = %v", entry.Fields)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	logger.Error("request failed", errors.New("connection refused"), Fields{"status": 502})

	out := buf.String()
	if !strings.Contains(out, "ERROR: request failed") {
		t.Errorf("missing level and message:\n%s", out)
	}
	if !strings.Contains(out, `error="connection refused"`) {
		t.Errorf("missing error detail:\n%s", out)
	}
	if !strings.Contains(out, "status=502") {
		t.Errorf("missing field:\n%s", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(LevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("message below the level was emitted:\n%s", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("message after SetLevel was suppressed:\n%s", out)
	}
}

func TestLogger_MergesFieldMaps(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.Debug("m", Fields{"a": 1}, Fields{"b": 2})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if len(entry.Fields) != 2 {
		t.Errorf("fields = %v, want both maps merged", entry.Fields)
	}
}
