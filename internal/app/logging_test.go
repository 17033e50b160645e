package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
		{LogLevel(-1), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("careful %d", 1)
	logger.Error("broken")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were written: %q", out)
	}
	if !strings.Contains(out, "WARN  test: careful 1") {
		t.Errorf("missing warning in %q", out)
	}
	if !strings.Contains(out, "ERROR test: broken") {
		t.Errorf("missing error in %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("wrote %d lines, want 2", n)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	logger := base.WithField("session", "abc").WithComponent("dispatcher")

	logger.Info("hello")
	base.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "hello component=dispatcher session=abc") {
		t.Errorf("fields not sorted or missing: %q", lines[0])
	}
	if strings.Contains(lines[1], "=") {
		t.Errorf("WithField changed the parent logger: %q", lines[1])
	}
}

func TestLogger_NilOutputDisabled(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug})
	logger.Error("nowhere")
	NullLogger.Error("nowhere")
	NullLogger.WithField("a", 1).Info("nowhere")
}

func TestLogger_SetLevelIsShared(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})
	derived := logger.WithComponent("renderer")
	logger.SetLevel(LogLevelDebug)
	if derived.Level() != LogLevelDebug {
		t.Errorf("derived Level() = %v, want DEBUG", derived.Level())
	}
	derived.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message not written after SetLevel")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "cellpad", "cellpad.log")
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f})
	logger.Info("to disk")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to disk") {
		t.Errorf("log file = %q, want the message", data)
	}
}
