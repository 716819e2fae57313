package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "prestream.log")

	if err := Init("debug", logFile, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("hello from test", zap.Int("value", 42))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestInitWithoutSinks(t *testing.T) {
	if err := Init("info", "", false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	// Logging into a sink-less tee must not panic.
	Info("dropped")
	Warn("dropped too")
}
