package util

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	// EchoResults prints the value of each top-level form after evaluation.
	EchoResults bool `toml:"echo_results"`
	// HaltOnError stops the run at the first failing top-level form instead
	// of continuing with the next one.
	HaltOnError bool `toml:"halt_on_error"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// DefaultConfiguration is the configuration used when no file is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		EchoResults: true,
		HaltOnError: true,
		LogLevel:    "error",
	}
}

// LoadConfiguration reads a TOML configuration file over the defaults.
func LoadConfiguration(path string) (Configuration, error) {
	config := DefaultConfiguration()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return config, nil
}
