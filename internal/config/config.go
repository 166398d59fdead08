package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Shuffle modes
const (
	// ShuffleOnce seeds the generator once before the shuffle.
	ShuffleOnce = "once"
	// ShuffleLegacy reseeds from a one-second clock on every swap.
	ShuffleLegacy = "legacy"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Color   string `toml:"color"`
	Shuffle string `toml:"shuffle"`
	// Seed fixes the shuffle seed; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color:   ColorAuto,
		Shuffle: ShuffleOnce,
	}
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be %q, %q or %q, got %q",
			ErrInvalidConfig, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	switch c.Shuffle {
	case ShuffleOnce, ShuffleLegacy:
	default:
		return fmt.Errorf("%w: shuffle must be %q or %q, got %q",
			ErrInvalidConfig, ShuffleOnce, ShuffleLegacy, c.Shuffle)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "klondike", "config.toml")
}

// LoadConfig loads the config file at path, or the default location when
// path is empty. A missing file yields the defaults; nothing is written.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	// Keys absent from the file keep their defaults
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// InitConfig writes the default config to path (or the default location)
// unless a file is already there. It reports whether a file was created.
func InitConfig(path string) (bool, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(Default()); err != nil {
		return false, fmt.Errorf("error encoding config: %w", err)
	}

	return true, nil
}
