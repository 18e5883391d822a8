package main

import (
	"log/slog"
	"testing"

	"clove/internal/util"
)

func TestFlagOverridesKeepFileLogSettings(t *testing.T) {
	config := util.DefaultConfiguration()
	config.LogLevel = "debug"
	config.LogFile = "/tmp/clove.log"
	config.EchoResults = false

	// No flags set: the file settings must survive untouched.
	merged := flagOverrides(config, map[string]bool{})
	if merged.LogLevel != "debug" {
		t.Errorf("log_level from file was dropped. got=%q", merged.LogLevel)
	}
	if merged.LogFile != "/tmp/clove.log" {
		t.Errorf("log_file from file was dropped. got=%q", merged.LogFile)
	}
	if merged.EchoResults {
		t.Errorf("echo_results from file was dropped")
	}
}

func TestFlagOverridesApplySetFlags(t *testing.T) {
	origLevel, origFile, origEcho := logLevel, logFile, echoResults
	defer func() { logLevel, logFile, echoResults = origLevel, origFile, origEcho }()

	logLevel = "warn"
	logFile = "/tmp/other.log"
	echoResults = true

	config := util.DefaultConfiguration()
	config.LogLevel = "debug"
	config.LogFile = "/tmp/clove.log"
	config.EchoResults = false

	merged := flagOverrides(config, map[string]bool{
		"log-level": true,
		"log-file":  true,
		"echo":      true,
	})
	if merged.LogLevel != "warn" {
		t.Errorf("set log-level flag did not override the file. got=%q", merged.LogLevel)
	}
	if merged.LogFile != "/tmp/other.log" {
		t.Errorf("set log-file flag did not override the file. got=%q", merged.LogFile)
	}
	if !merged.EchoResults {
		t.Errorf("set echo flag did not override the file")
	}
}

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelError},
	}

	for _, tt := range tests {
		if got := logLevelFromString(tt.input); got != tt.expected {
			t.Errorf("level for %q: got=%v, want=%v", tt.input, got, tt.expected)
		}
	}
}
