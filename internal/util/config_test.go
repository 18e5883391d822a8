package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfiguration(t *testing.T) {
	config := DefaultConfiguration()
	if !config.EchoResults {
		t.Errorf("echo_results should default to true")
	}
	if !config.HaltOnError {
		t.Errorf("halt_on_error should default to true")
	}
	if config.LogLevel != "error" {
		t.Errorf("log_level should default to error, got %q", config.LogLevel)
	}
}

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clove.toml")
	content := `
echo_results = false
halt_on_error = false
log_level = "debug"
log_file = "/tmp/clove.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config.EchoResults {
		t.Errorf("echo_results not applied")
	}
	if config.HaltOnError {
		t.Errorf("halt_on_error not applied")
	}
	if config.LogLevel != "debug" {
		t.Errorf("log_level not applied, got %q", config.LogLevel)
	}
	if config.LogFile != "/tmp/clove.log" {
		t.Errorf("log_file not applied, got %q", config.LogFile)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadConfigurationPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clove.toml")
	if err := os.WriteFile(path, []byte(`log_level = "info"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// Unset keys keep their defaults.
	if !config.EchoResults || !config.HaltOnError {
		t.Errorf("defaults were not preserved: %+v", config)
	}
	if config.LogLevel != "info" {
		t.Errorf("log_level not applied, got %q", config.LogLevel)
	}
}
